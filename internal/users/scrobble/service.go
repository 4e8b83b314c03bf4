package scrobble

import (
	"context"
	"log/slog"
	"time"

	"github.com/sphildreth/melodee-sub003/internal/catalog/song"
	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
)

// FlagSource reports whether scrobbling is switched on. The settings
// registry satisfies this.
type FlagSource interface {
	ScrobblingEnabled(context context.Context) bool
}

// SongResolver locates the scrobbled song in the catalog hierarchy so its
// album and artist counters can be bumped too. The catalog song service
// satisfies this.
type SongResolver interface {
	SongLineage(context context.Context, id int) (*song.Lineage, error)
}

// PlaySink receives play notifications for the per-user overlay rows. The
// interaction service satisfies this.
type PlaySink interface {
	MarkSongPlayed(context context.Context, userID, songID int) error
	MarkAlbumPlayed(context context.Context, userID, albumID int) error
}

// CatalogSink receives play notifications for the catalog-wide counters.
type CatalogSink interface {
	MarkSongPlayed(context context.Context, songID int) error
	MarkAlbumPlayed(context context.Context, albumID int) error
	MarkArtistPlayed(context context.Context, artistID int) error
}

// playCounter is the shape of the catalog services' MarkPlayed methods.
type playCounter interface {
	MarkPlayed(context context.Context, id int) error
}

// CatalogCounters adapts the song, album and artist services onto
// [CatalogSink].
type CatalogCounters struct {
	Songs   playCounter
	Albums  playCounter
	Artists playCounter
}

func (c CatalogCounters) MarkSongPlayed(context context.Context, songID int) error {
	return c.Songs.MarkPlayed(context, songID)
}

func (c CatalogCounters) MarkAlbumPlayed(context context.Context, albumID int) error {
	return c.Albums.MarkPlayed(context, albumID)
}

func (c CatalogCounters) MarkArtistPlayed(context context.Context, artistID int) error {
	return c.Artists.MarkPlayed(context, artistID)
}

type Service struct {
	repo    Repository
	flags   FlagSource
	songs   SongResolver
	plays   PlaySink
	catalog CatalogSink
	logger  *slog.Logger
}

func NewService(repo Repository, flags FlagSource, songs SongResolver, plays PlaySink, catalog CatalogSink, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		flags:   flags,
		songs:   songs,
		plays:   plays,
		catalog: catalog,
		logger:  logger,
	}
}

func (service *Service) ListScrobbles(context context.Context, userID int, limit, offset int) ([]*Scrobble, int, error) {
	return service.repo.ListScrobbles(context, userID, limit, offset)
}

// Record accepts a play submission. A replay of an already-recorded play is
// absorbed without error and without counting anything twice.
func (service *Service) Record(context context.Context, s *Scrobble) error {
	if !service.flags.ScrobblingEnabled(context) {
		service.logger.Debug("scrobble_skipped_disabled", slog.Int("user_id", s.UserID))
		return nil
	}
	if s.PlayTimeInMs < 0 {
		return apperr.InvalidRange(FieldPlayTimeInMs, "must not be negative")
	}

	if s.ScrobbledAt.IsZero() {
		s.ScrobbledAt = time.Now().UTC()
	}
	if s.APIKey == "" {
		s.APIKey = apikey.New()
	}

	inserted, err := service.repo.InsertScrobble(context, s)
	if err != nil {
		return err
	}
	if !inserted {
		service.logger.Debug("scrobble_replay_absorbed", slog.Int("user_id", s.UserID),
			slog.Int("song_id", s.SongID), slog.Int64("play_time_ms", s.PlayTimeInMs))
		return nil
	}

	service.countPlay(context, s)
	return nil
}

// countPlay fans the accepted scrobble out to the denormalized counters.
// Counter failures are logged, never bubbled: the scrobble row is already
// durable and a recompute can repair the tallies.
func (service *Service) countPlay(context context.Context, s *Scrobble) {
	if err := service.plays.MarkSongPlayed(context, s.UserID, s.SongID); err != nil {
		service.logger.Error("scrobble_user_song_count_failed", slog.Int("song_id", s.SongID), slog.Any("error", err))
	}
	if err := service.catalog.MarkSongPlayed(context, s.SongID); err != nil {
		service.logger.Error("scrobble_song_count_failed", slog.Int("song_id", s.SongID), slog.Any("error", err))
	}

	lineage, err := service.songs.SongLineage(context, s.SongID)
	if err != nil {
		service.logger.Error("scrobble_song_lookup_failed", slog.Int("song_id", s.SongID), slog.Any("error", err))
		return
	}

	if err := service.plays.MarkAlbumPlayed(context, s.UserID, lineage.AlbumID); err != nil {
		service.logger.Error("scrobble_user_album_count_failed", slog.Int("album_id", lineage.AlbumID), slog.Any("error", err))
	}
	if err := service.catalog.MarkAlbumPlayed(context, lineage.AlbumID); err != nil {
		service.logger.Error("scrobble_album_count_failed", slog.Int("album_id", lineage.AlbumID), slog.Any("error", err))
	}
	if err := service.catalog.MarkArtistPlayed(context, lineage.ArtistID); err != nil {
		service.logger.Error("scrobble_artist_count_failed", slog.Int("artist_id", lineage.ArtistID), slog.Any("error", err))
	}
}

func (service *Service) DeleteScrobble(context context.Context, id int) error {
	return service.repo.DeleteScrobble(context, id)
}
