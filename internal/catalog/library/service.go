package library

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

func (service *Service) ListLibraries(context context.Context) ([]*Library, error) {
	return service.repo.ListLibraries(context)
}

func (service *Service) GetLibrary(context context.Context, id int) (*Library, error) {
	return service.repo.GetLibrary(context, id)
}

func (service *Service) GetLibraryByAPIKey(context context.Context, key string) (*Library, error) {
	return service.repo.GetLibraryByAPIKey(context, key)
}

// GetStorageLibrary returns the first storage library. Deployments may mount
// several; callers that care about a specific one should resolve by api key.
func (service *Service) GetStorageLibrary(context context.Context) (*Library, error) {
	return service.repo.GetLibraryByType(context, TypeStorage)
}

func (service *Service) CreateLibrary(context context.Context, l *Library) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, l.Name).MaxLen(FieldName, l.Name, constants.MaxGeneralInputLength)
	validator.Required(FieldPath, l.Path).MaxLen(FieldPath, l.Path, constants.MaxIndexableLength)
	if err := validator.Err(); err != nil {
		return err
	}

	if l.Type < TypeInbound || l.Type > TypeImages {
		return apperr.InvalidRange(FieldType, "Unknown library type")
	}

	// Paths are stored with a trailing separator so scanner joins stay simple.
	if !strings.HasSuffix(l.Path, "/") {
		l.Path += "/"
	}

	if l.APIKey == "" {
		l.APIKey = apikey.New()
	}

	if err := service.repo.CreateLibrary(context, l); err != nil {
		return err
	}

	service.logger.Info("library_created", slog.String("name", l.Name), slog.Int("type", int(l.Type)))
	return nil
}

func (service *Service) UpdateLibrary(context context.Context, id int, l *Library) error {
	l.ID = id
	validator := &validate.Validator{}
	validator.Required(FieldName, l.Name).MaxLen(FieldName, l.Name, constants.MaxGeneralInputLength)
	validator.Required(FieldPath, l.Path).MaxLen(FieldPath, l.Path, constants.MaxIndexableLength)
	if err := validator.Err(); err != nil {
		return err
	}

	if l.Type < TypeInbound || l.Type > TypeImages {
		return apperr.InvalidRange(FieldType, "Unknown library type")
	}

	if !strings.HasSuffix(l.Path, "/") {
		l.Path += "/"
	}

	if err := service.repo.UpdateLibrary(context, l); err != nil {
		return err
	}

	service.logger.Info("library_updated", slog.Int("library_id", l.ID))
	return nil
}

// RecordScanStats writes a completed scan's counts and timestamp back onto
// the library row.
func (service *Service) RecordScanStats(context context.Context, id int, stats ScanStats) error {
	if err := service.repo.UpdateScanStats(context, id, stats); err != nil {
		return err
	}

	service.logger.Info("library_scan_recorded",
		slog.Int("library_id", id),
		slog.Int("artists", stats.ArtistCount),
		slog.Int("albums", stats.AlbumCount),
		slog.Int("songs", stats.SongCount),
	)
	return nil
}

// DeleteLibrary removes a library and, through the storage cascade, every
// artist, album and song under it.
func (service *Service) DeleteLibrary(context context.Context, id int) error {
	l, err := service.repo.GetLibrary(context, id)
	if err != nil {
		return err
	}
	if l.IsLocked {
		return apperr.ValidationError("Library is locked")
	}

	if err := service.repo.DeleteLibrary(context, id); err != nil {
		return err
	}

	service.logger.Warn("library_deleted", slog.Int("library_id", id), slog.String("name", l.Name))
	return nil
}
