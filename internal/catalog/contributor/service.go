package contributor

import (
	"context"
	"log/slog"

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

func (service *Service) ListByAlbum(context context.Context, albumID int) ([]*Contributor, error) {
	return service.repo.ListByAlbum(context, albumID)
}

func (service *Service) ListBySong(context context.Context, songID int) ([]*Contributor, error) {
	return service.repo.ListBySong(context, songID)
}

func (service *Service) GetContributor(context context.Context, id int) (*Contributor, error) {
	return service.repo.GetContributor(context, id)
}

// validate enforces the credit variant: exactly one of ArtistID and
// ContributorName must be populated. Legacy rows may violate this; new
// writes may not.
func (service *Service) validate(c *Contributor) error {
	validator := &validate.Validator{}
	validator.Required(FieldRole, c.Role).MaxLen(FieldRole, c.Role, constants.MaxGeneralInputLength)

	hasArtist := c.ArtistID != nil
	hasName := c.ContributorName != nil && *c.ContributorName != ""
	validator.Custom(FieldArtistID, !hasArtist && !hasName,
		"Either a cataloged artist or a contributor name is required")
	validator.Custom(FieldArtistID, hasArtist && hasName,
		"A credit is cataloged or free-text, not both")

	if hasName {
		validator.MaxLen(FieldContributorName, *c.ContributorName, constants.MaxGeneralLongLength)
	}

	return validator.Err()
}

func (service *Service) CreateContributor(context context.Context, c *Contributor) error {
	if err := service.validate(c); err != nil {
		return err
	}

	if c.APIKey == "" {
		c.APIKey = apikey.New()
	}

	if err := service.repo.CreateContributor(context, c); err != nil {
		return err
	}

	service.logger.Info("contributor_created",
		slog.String("role", c.Role), slog.Int("album_id", c.AlbumID))
	return nil
}

func (service *Service) UpdateContributor(context context.Context, id int, c *Contributor) error {
	c.ID = id
	if err := service.validate(c); err != nil {
		return err
	}

	if err := service.repo.UpdateContributor(context, c); err != nil {
		return err
	}

	service.logger.Info("contributor_updated", slog.Int("contributor_id", c.ID))
	return nil
}

func (service *Service) DeleteContributor(context context.Context, id int) error {
	if err := service.repo.DeleteContributor(context, id); err != nil {
		return err
	}

	service.logger.Warn("contributor_deleted", slog.Int("contributor_id", id))
	return nil
}

// ReplaceAlbumCredits swaps an album's full credit set, the pattern a
// re-scan uses when tags change.
func (service *Service) ReplaceAlbumCredits(context context.Context, albumID int, credits []*Contributor) error {
	for _, c := range credits {
		if err := service.validate(c); err != nil {
			return err
		}
	}

	if err := service.repo.DeleteByAlbum(context, albumID); err != nil {
		return err
	}

	for _, c := range credits {
		c.AlbumID = albumID
		if c.APIKey == "" {
			c.APIKey = apikey.New()
		}
		if err := service.repo.CreateContributor(context, c); err != nil {
			return err
		}
	}

	service.logger.Info("album_credits_replaced",
		slog.Int("album_id", albumID), slog.Int("count", len(credits)))
	return nil
}
