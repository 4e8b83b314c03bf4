package artist

import (
	"context"
	"log/slog"

	"github.com/sphildreth/melodee-sub003/internal/catalog/normalize"
	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/internal/platform/constants"
	"github.com/sphildreth/melodee-sub003/internal/platform/database/schema"
	"github.com/sphildreth/melodee-sub003/internal/platform/validate"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
)

// ArticleSource supplies the ignored-article list used when deriving sort
// names. The settings registry satisfies this.
type ArticleSource interface {
	IgnoredArticles(context context.Context) []string
}

type Service struct {
	repo     Repository
	articles ArticleSource
	logger   *slog.Logger
}

func NewService(repo Repository, articles ArticleSource, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		articles: articles,
		logger:   logger,
	}
}

func (service *Service) ListArtists(context context.Context, filter Filter, limit, offset int) ([]*Artist, int, error) {
	return service.repo.ListArtists(context, filter, limit, offset)
}

func (service *Service) GetArtist(context context.Context, id int) (*Artist, error) {
	return service.repo.GetArtist(context, id)
}

func (service *Service) GetArtistByAPIKey(context context.Context, key string) (*Artist, error) {
	return service.repo.GetArtistByAPIKey(context, key)
}

// FindCandidates returns artists whose normalized name matches the given
// name. Collisions are dedup candidates for a human decision.
func (service *Service) FindCandidates(context context.Context, name string) ([]*Artist, error) {
	return service.repo.FindByNameNormalized(context, normalize.Name(name))
}

func (service *Service) validate(a *Artist) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, a.Name).MaxLen(FieldName, a.Name, constants.MaxGeneralInputLength)
	validator.Required(FieldDirectory, a.Directory).MaxLen(FieldDirectory, a.Directory, constants.MaxIndexableLength)
	return validator.Err()
}

// derive fills the computed columns from the display name.
func (service *Service) derive(context context.Context, a *Artist) {
	a.NameNormalized = normalize.Name(a.Name)
	if a.SortName == nil || *a.SortName == "" {
		sortName := normalize.SortName(a.Name, service.articles.IgnoredArticles(context))
		a.SortName = &sortName
	}
}

func (service *Service) CreateArtist(context context.Context, a *Artist) error {
	if err := service.validate(a); err != nil {
		return err
	}

	service.derive(context, a)
	if a.APIKey == "" {
		a.APIKey = apikey.New()
	}

	if err := service.repo.CreateArtist(context, a); err != nil {
		return err
	}

	service.logger.Info("artist_created", slog.String("name", a.Name), slog.Int("library_id", a.LibraryID))
	return nil
}

// UpsertArtist implements the scanner's matching policy: an external
// identifier match wins, then an exact name match; otherwise a new row is
// created. Artists that merely normalize to the same name are never merged;
// they come back as candidates on the result for the caller to resolve.
func (service *Service) UpsertArtist(context context.Context, a *Artist) (*UpsertResult, error) {
	if err := service.validate(a); err != nil {
		return nil, err
	}

	type externalID struct {
		column string
		value  *string
	}
	externalIDs := []externalID{
		{schema.CoreArtist.MusicBrainzID, a.MusicBrainzID},
		{schema.CoreArtist.SpotifyID, a.SpotifyID},
		{schema.CoreArtist.DiscogsID, a.DiscogsID},
		{schema.CoreArtist.LastFmID, a.LastFmID},
	}

	for _, ext := range externalIDs {
		if ext.value == nil || *ext.value == "" {
			continue
		}
		existing, err := service.repo.GetArtistByExternalID(context, ext.column, *ext.value)
		if err == nil {
			return &UpsertResult{Artist: service.refresh(context, existing, a)}, nil
		}
		if !apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, err
		}
	}

	existing, err := service.repo.GetArtistByName(context, a.Name)
	if err == nil {
		return &UpsertResult{Artist: service.refresh(context, existing, a)}, nil
	}
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	candidates, err := service.repo.FindByNameNormalized(context, normalize.Name(a.Name))
	if err != nil {
		return nil, err
	}

	if err := service.CreateArtist(context, a); err != nil {
		return nil, err
	}

	return &UpsertResult{Artist: a, Created: true, Candidates: candidates}, nil
}

// refresh merges scanner-provided metadata onto an existing row, skipping
// locked artists entirely.
func (service *Service) refresh(context context.Context, existing, incoming *Artist) *Artist {
	if existing.IsLocked {
		return existing
	}

	merged := *existing
	merged.RealName = coalesce(incoming.RealName, existing.RealName)
	merged.AlternateNames = coalesce(incoming.AlternateNames, existing.AlternateNames)
	merged.Biography = coalesce(incoming.Biography, existing.Biography)
	merged.MusicBrainzID = coalesce(incoming.MusicBrainzID, existing.MusicBrainzID)
	merged.DiscogsID = coalesce(incoming.DiscogsID, existing.DiscogsID)
	merged.SpotifyID = coalesce(incoming.SpotifyID, existing.SpotifyID)
	merged.ItunesID = coalesce(incoming.ItunesID, existing.ItunesID)
	merged.AmgID = coalesce(incoming.AmgID, existing.AmgID)
	merged.WikiDataID = coalesce(incoming.WikiDataID, existing.WikiDataID)
	merged.LastFmID = coalesce(incoming.LastFmID, existing.LastFmID)

	if err := service.repo.UpdateArtist(context, &merged); err != nil {
		service.logger.Error("artist_refresh_failed", slog.Int("artist_id", existing.ID), slog.Any("error", err))
		return existing
	}
	return &merged
}

func (service *Service) UpdateArtist(context context.Context, id int, a *Artist) error {
	a.ID = id
	if err := service.validate(a); err != nil {
		return err
	}
	service.derive(context, a)

	if err := service.repo.UpdateArtist(context, a); err != nil {
		return err
	}

	service.logger.Info("artist_updated", slog.Int("artist_id", a.ID))
	return nil
}

// MarkPlayed bumps the artist play counter. Store-side atomic increment, so
// two concurrent players both count.
func (service *Service) MarkPlayed(context context.Context, id int) error {
	return service.repo.IncrementPlayedCount(context, id)
}

// RecomputeCounters refreshes the denormalized album/song counts after bulk
// child mutation.
func (service *Service) RecomputeCounters(context context.Context, id int) error {
	return service.repo.RecomputeCounters(context, id)
}

// DeleteArtist removes the artist and cascades through albums, discs, songs
// and their interaction rows.
func (service *Service) DeleteArtist(context context.Context, id int) error {
	if err := service.repo.DeleteArtist(context, id); err != nil {
		return err
	}

	service.logger.Warn("artist_deleted", slog.Int("artist_id", id))
	return nil
}

func coalesce(a, b *string) *string {
	if a != nil && *a != "" {
		return a
	}
	return b
}
