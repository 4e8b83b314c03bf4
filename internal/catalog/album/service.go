package album

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sphildreth/melodee-sub003/internal/catalog/normalize"
	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/internal/platform/constants"
	"github.com/sphildreth/melodee-sub003/internal/platform/database/schema"
	"github.com/sphildreth/melodee-sub003/internal/platform/validate"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
)

// BoundsSource supplies the registry-declared validation bounds applied to
// incoming albums and discs. The settings registry satisfies this.
type BoundsSource interface {
	MinimumAlbumYear(context context.Context) int
	MaximumAlbumYear(context context.Context) int
	MaximumDiscNumber(context context.Context) int
	IgnoredArticles(context context.Context) []string
}

type Service struct {
	repo   Repository
	bounds BoundsSource
	logger *slog.Logger
}

func NewService(repo Repository, bounds BoundsSource, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bounds: bounds,
		logger: logger,
	}
}

func (service *Service) ListAlbums(context context.Context, filter Filter, limit, offset int) ([]*Album, int, error) {
	return service.repo.ListAlbums(context, filter, limit, offset)
}

func (service *Service) GetAlbum(context context.Context, id int) (*Album, error) {
	return service.repo.GetAlbum(context, id)
}

func (service *Service) GetAlbumByAPIKey(context context.Context, key string) (*Album, error) {
	return service.repo.GetAlbumByAPIKey(context, key)
}

func (service *Service) validate(context context.Context, a *Album) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, a.Name).MaxLen(FieldName, a.Name, constants.MaxGeneralInputLength)
	validator.Required(FieldDirectory, a.Directory).MaxLen(FieldDirectory, a.Directory, constants.MaxIndexableLength)
	if err := validator.Err(); err != nil {
		return err
	}

	minYear := service.bounds.MinimumAlbumYear(context)
	maxYear := service.bounds.MaximumAlbumYear(context)
	if year := a.ReleaseDate.Year(); year < minYear || year > maxYear {
		return apperr.InvalidRange(FieldReleaseDate,
			fmt.Sprintf("Release year must be between %d and %d", minYear, maxYear))
	}

	return nil
}

func (service *Service) derive(context context.Context, a *Album) {
	a.NameNormalized = normalize.Name(a.Name)
	if a.SortName == nil || *a.SortName == "" {
		sortName := normalize.SortName(a.Name, service.bounds.IgnoredArticles(context))
		a.SortName = &sortName
	}
}

func (service *Service) CreateAlbum(context context.Context, a *Album) error {
	if err := service.validate(context, a); err != nil {
		return err
	}

	service.derive(context, a)
	if a.APIKey == "" {
		a.APIKey = apikey.New()
	}

	if err := service.repo.CreateAlbum(context, a); err != nil {
		return err
	}

	service.logger.Info("album_created",
		slog.String("name", a.Name), slog.Int("artist_id", a.ArtistID))
	return nil
}

// UpsertAlbum matches by external identifier first, then by exact name
// scoped to the artist; on no match a new row is created. A renamed album
// carrying a known identifier refreshes the existing row instead of
// colliding with it. Locked albums are returned untouched.
func (service *Service) UpsertAlbum(context context.Context, a *Album) (*UpsertResult, error) {
	if err := service.validate(context, a); err != nil {
		return nil, err
	}

	type externalID struct {
		column string
		value  *string
	}
	externalIDs := []externalID{
		{schema.CoreAlbum.MusicBrainzID, a.MusicBrainzID},
		{schema.CoreAlbum.SpotifyID, a.SpotifyID},
		{schema.CoreAlbum.DiscogsID, a.DiscogsID},
		{schema.CoreAlbum.LastFmID, a.LastFmID},
	}

	for _, ext := range externalIDs {
		if ext.value == nil || *ext.value == "" {
			continue
		}
		existing, err := service.repo.GetAlbumByExternalID(context, ext.column, *ext.value)
		if err == nil {
			return &UpsertResult{Album: service.refresh(context, existing, a)}, nil
		}
		if !apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, err
		}
	}

	existing, err := service.repo.GetAlbumByName(context, a.ArtistID, a.Name)
	if err == nil {
		return &UpsertResult{Album: service.refresh(context, existing, a)}, nil
	}
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	if err := service.CreateAlbum(context, a); err != nil {
		return nil, err
	}

	return &UpsertResult{Album: a, Created: true}, nil
}

// refresh merges scanner-provided metadata onto an existing row, skipping
// locked albums entirely.
func (service *Service) refresh(context context.Context, existing, incoming *Album) *Album {
	if existing.IsLocked {
		return existing
	}

	merged := *existing
	merged.ReleaseDate = incoming.ReleaseDate
	merged.OriginalReleaseDate = incoming.OriginalReleaseDate
	merged.Genres = incoming.Genres
	merged.Moods = incoming.Moods
	merged.IsCompilation = incoming.IsCompilation
	merged.MusicBrainzID = coalesce(incoming.MusicBrainzID, existing.MusicBrainzID)
	merged.SpotifyID = coalesce(incoming.SpotifyID, existing.SpotifyID)
	merged.DiscogsID = coalesce(incoming.DiscogsID, existing.DiscogsID)
	merged.LastFmID = coalesce(incoming.LastFmID, existing.LastFmID)

	if err := service.repo.UpdateAlbum(context, &merged); err != nil {
		service.logger.Error("album_refresh_failed", slog.Int("album_id", existing.ID), slog.Any("error", err))
		return existing
	}
	return &merged
}

func coalesce(a, b *string) *string {
	if a != nil && *a != "" {
		return a
	}
	return b
}

func (service *Service) UpdateAlbum(context context.Context, id int, a *Album) error {
	a.ID = id
	if err := service.validate(context, a); err != nil {
		return err
	}
	service.derive(context, a)

	if err := service.repo.UpdateAlbum(context, a); err != nil {
		return err
	}

	service.logger.Info("album_updated", slog.Int("album_id", a.ID))
	return nil
}

func (service *Service) MarkPlayed(context context.Context, id int) error {
	return service.repo.IncrementPlayedCount(context, id)
}

// RecomputeCounters refreshes disccount/songcount/duration after bulk song
// mutation. Callers must invoke it explicitly; counters are not triggers.
func (service *Service) RecomputeCounters(context context.Context, id int) error {
	if err := service.repo.RecomputeCounters(context, id); err != nil {
		return err
	}

	service.logger.Debug("album_counters_recomputed", slog.Int("album_id", id))
	return nil
}

func (service *Service) DeleteAlbum(context context.Context, id int) error {
	if err := service.repo.DeleteAlbum(context, id); err != nil {
		return err
	}

	service.logger.Warn("album_deleted", slog.Int("album_id", id))
	return nil
}

func (service *Service) ListDiscs(context context.Context, albumID int) ([]*Disc, error) {
	return service.repo.ListDiscs(context, albumID)
}

func (service *Service) GetDisc(context context.Context, id int) (*Disc, error) {
	return service.repo.GetDisc(context, id)
}

// AddDisc appends a disc to an album. Disc numbers start at 1 and are capped
// by the validation.maximummedianumber setting.
func (service *Service) AddDisc(context context.Context, d *Disc) error {
	maxDisc := service.bounds.MaximumDiscNumber(context)
	if d.DiscNumber < 1 || int(d.DiscNumber) > maxDisc {
		return apperr.InvalidRange(FieldDiscNumber,
			fmt.Sprintf("Disc number must be between 1 and %d", maxDisc))
	}

	if err := service.repo.CreateDisc(context, d); err != nil {
		return err
	}

	service.logger.Info("disc_added", slog.Int("album_id", d.AlbumID), slog.Int("disc_number", int(d.DiscNumber)))
	return nil
}

func (service *Service) UpdateDisc(context context.Context, d *Disc) error {
	maxDisc := service.bounds.MaximumDiscNumber(context)
	if d.DiscNumber < 1 || int(d.DiscNumber) > maxDisc {
		return apperr.InvalidRange(FieldDiscNumber,
			fmt.Sprintf("Disc number must be between 1 and %d", maxDisc))
	}

	return service.repo.UpdateDisc(context, d)
}

// DeleteDisc removes a disc and, through the storage cascade, its songs.
func (service *Service) DeleteDisc(context context.Context, id int) error {
	if err := service.repo.DeleteDisc(context, id); err != nil {
		return err
	}

	service.logger.Warn("disc_deleted", slog.Int("disc_id", id))
	return nil
}
