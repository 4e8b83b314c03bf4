package radiostation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/internal/platform/constants"
	"github.com/sphildreth/melodee-sub003/internal/platform/validate"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListStations(context context.Context) ([]*RadioStation, error) {
	return service.repo.ListStations(context)
}

func (service *Service) GetStation(context context.Context, id int) (*RadioStation, error) {
	return service.repo.GetStation(context, id)
}

func (service *Service) GetStationByAPIKey(context context.Context, key string) (*RadioStation, error) {
	return service.repo.GetStationByAPIKey(context, key)
}

func (service *Service) validate(r *RadioStation) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, r.Name).MaxLen(FieldName, r.Name, constants.MaxGeneralInputLength)
	validator.Required(FieldStreamURL, r.StreamURL).MaxLen(FieldStreamURL, r.StreamURL, constants.MaxIndexableLength)
	validator.Custom(FieldStreamURL, r.StreamURL != "" && !strings.HasPrefix(r.StreamURL, "http"),
		"Must be an http(s) URL")
	if r.HomePageURL != nil {
		validator.MaxLen(FieldHomePageURL, *r.HomePageURL, constants.MaxIndexableLength)
	}
	return validator.Err()
}

func (service *Service) CreateStation(context context.Context, r *RadioStation) error {
	if err := service.validate(r); err != nil {
		return err
	}
	if r.APIKey == "" {
		r.APIKey = apikey.New()
	}

	if err := service.repo.CreateStation(context, r); err != nil {
		return err
	}

	service.logger.Info("radio_station_created", slog.String("name", r.Name))
	return nil
}

func (service *Service) UpdateStation(context context.Context, id int, r *RadioStation) error {
	r.ID = id
	if err := service.validate(r); err != nil {
		return err
	}
	return service.repo.UpdateStation(context, r)
}

func (service *Service) DeleteStation(context context.Context, id int) error {
	existing, err := service.repo.GetStation(context, id)
	if err != nil {
		return err
	}
	if existing.IsLocked {
		return apperr.ValidationError("radio station is locked")
	}

	return service.repo.DeleteStation(context, id)
}
