package song

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sphildreth/melodee-sub003/internal/catalog/normalize"
	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/internal/platform/constants"
	"github.com/sphildreth/melodee-sub003/internal/platform/validate"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
)

// BoundsSource supplies the registry-declared validation bounds for songs.
type BoundsSource interface {
	MaximumSongNumber(context context.Context) int
	MinimumSongDuration(context context.Context) int
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

func (service *Service) ListSongs(context context.Context, filter Filter, limit, offset int) ([]*Song, int, error) {
	return service.repo.ListSongs(context, filter, limit, offset)
}

func (service *Service) ListSongsByDisc(context context.Context, albumDiscID int) ([]*Song, error) {
	return service.repo.ListSongsByDisc(context, albumDiscID)
}

func (service *Service) GetSong(context context.Context, id int) (*Song, error) {
	return service.repo.GetSong(context, id)
}

func (service *Service) GetSongByAPIKey(context context.Context, key string) (*Song, error) {
	return service.repo.GetSongByAPIKey(context, key)
}

// FindDuplicate resolves a song by content hash; NotFound means the file has
// never been cataloged.
func (service *Service) FindDuplicate(context context.Context, fileHash string) (*Song, error) {
	return service.repo.GetSongByFileHash(context, fileHash)
}

func (service *Service) validate(context context.Context, s *Song) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, s.Title).MaxLen(FieldTitle, s.Title, constants.MaxGeneralInputLength)
	validator.Required(FieldFileName, s.FileName).MaxLen(FieldFileName, s.FileName, constants.MaxGeneralLongLength)
	validator.Custom(FieldFileHash, len(s.FileHash) != constants.HashOrGuidLength,
		fmt.Sprintf("File hash must be exactly %d characters", constants.HashOrGuidLength))
	if err := validator.Err(); err != nil {
		return err
	}

	maxSong := service.bounds.MaximumSongNumber(context)
	if s.SongNumber < 1 || s.SongNumber > maxSong {
		return apperr.InvalidRange(FieldSongNumber,
			fmt.Sprintf("Song number must be between 1 and %d", maxSong))
	}

	if minDuration := service.bounds.MinimumSongDuration(context); s.Duration < float64(minDuration) {
		return apperr.InvalidRange(FieldDuration,
			fmt.Sprintf("Duration must be at least %d seconds", minDuration))
	}

	return nil
}

func (service *Service) derive(context context.Context, s *Song) {
	s.TitleNormalized = normalize.Name(s.Title)
	if s.TitleSort == nil || *s.TitleSort == "" {
		titleSort := normalize.SortName(s.Title, service.bounds.IgnoredArticles(context))
		s.TitleSort = &titleSort
	}
}

func (service *Service) CreateSong(context context.Context, s *Song) error {
	if err := service.validate(context, s); err != nil {
		return err
	}

	service.derive(context, s)
	if s.APIKey == "" {
		s.APIKey = apikey.New()
	}

	if err := service.repo.CreateSong(context, s); err != nil {
		return err
	}

	service.logger.Info("song_created",
		slog.String("title", s.Title), slog.Int("disc_id", s.AlbumDiscID), slog.Int("number", s.SongNumber))
	return nil
}

func (service *Service) UpdateSong(context context.Context, id int, s *Song) error {
	s.ID = id
	if err := service.validate(context, s); err != nil {
		return err
	}
	service.derive(context, s)

	if err := service.repo.UpdateSong(context, s); err != nil {
		return err
	}

	service.logger.Info("song_updated", slog.Int("song_id", s.ID))
	return nil
}

// MarkPlayed bumps the song play counter atomically.
func (service *Service) MarkPlayed(context context.Context, id int) error {
	return service.repo.IncrementPlayedCount(context, id)
}

// SongLineage resolves the song's disc, album and artist in one query.
func (service *Service) SongLineage(context context.Context, id int) (*Lineage, error) {
	return service.repo.GetLineage(context, id)
}

// DeleteSong removes the song; bookmarks, scrobbles, play-queue and playlist
// entries referencing it go with it.
func (service *Service) DeleteSong(context context.Context, id int) error {
	if err := service.repo.DeleteSong(context, id); err != nil {
		return err
	}

	service.logger.Warn("song_deleted", slog.Int("song_id", id))
	return nil
}
