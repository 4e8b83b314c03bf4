package interaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/internal/users/user"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
)

// CounterSink receives deltas for the denormalized per-user counters. The
// user service satisfies this.
type CounterSink interface {
	BumpCounter(context context.Context, userID int, counter string, delta int) error
}

type Service struct {
	repo     Repository
	counters CounterSink
	logger   *slog.Logger
}

func NewService(repo Repository, counters CounterSink, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		counters: counters,
		logger:   logger,
	}
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return apperr.InvalidRange(FieldRating, fmt.Sprintf("must be between %d and %d", MinRating, MaxRating))
	}
	return nil
}

// starDelta maps a star/hate transition onto a counter delta.
func starDelta(was, is bool) int {
	switch {
	case is && !was:
		return 1
	case was && !is:
		return -1
	default:
		return 0
	}
}

func (service *Service) bump(context context.Context, userID int, counter string, delta int) {
	if delta == 0 {
		return
	}
	if err := service.counters.BumpCounter(context, userID, counter, delta); err != nil {
		service.logger.Error("counter_bump_failed", slog.Int("user_id", userID),
			slog.String("counter", counter), slog.Any("error", err))
	}
}

// loadUserArtist returns the existing overlay row or a fresh zero-valued one.
func (service *Service) loadUserArtist(context context.Context, userID, artistID int) (*UserArtist, error) {
	ua, err := service.repo.GetUserArtist(context, userID, artistID)
	if err == nil {
		return ua, nil
	}
	if apperr.IsCode(err, apperr.CodeNotFound) {
		return &UserArtist{UserID: userID, ArtistID: artistID, APIKey: apikey.New()}, nil
	}
	return nil, err
}

func (service *Service) StarArtist(context context.Context, userID, artistID int, starred bool) error {
	ua, err := service.loadUserArtist(context, userID, artistID)
	if err != nil {
		return err
	}

	delta := starDelta(ua.IsStarred, starred)
	ua.IsStarred = starred
	if starred {
		now := time.Now().UTC()
		ua.StarredAt = &now
	} else {
		ua.StarredAt = nil
	}

	if err := service.repo.UpsertUserArtist(context, ua); err != nil {
		return err
	}
	service.bump(context, userID, user.CounterArtistsLiked, delta)
	return nil
}

func (service *Service) HateArtist(context context.Context, userID, artistID int, hated bool) error {
	ua, err := service.loadUserArtist(context, userID, artistID)
	if err != nil {
		return err
	}

	delta := starDelta(ua.IsHated, hated)
	ua.IsHated = hated

	if err := service.repo.UpsertUserArtist(context, ua); err != nil {
		return err
	}
	service.bump(context, userID, user.CounterArtistsDisliked, delta)
	return nil
}

func (service *Service) RateArtist(context context.Context, userID, artistID, rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}

	ua, err := service.loadUserArtist(context, userID, artistID)
	if err != nil {
		return err
	}
	ua.Rating = rating
	return service.repo.UpsertUserArtist(context, ua)
}

func (service *Service) ListStarredArtists(context context.Context, userID int) ([]*UserArtist, error) {
	return service.repo.ListStarredArtists(context, userID)
}

func (service *Service) loadUserAlbum(context context.Context, userID, albumID int) (*UserAlbum, error) {
	ua, err := service.repo.GetUserAlbum(context, userID, albumID)
	if err == nil {
		return ua, nil
	}
	if apperr.IsCode(err, apperr.CodeNotFound) {
		return &UserAlbum{UserID: userID, AlbumID: albumID, APIKey: apikey.New()}, nil
	}
	return nil, err
}

func (service *Service) StarAlbum(context context.Context, userID, albumID int, starred bool) error {
	ua, err := service.loadUserAlbum(context, userID, albumID)
	if err != nil {
		return err
	}

	delta := starDelta(ua.IsStarred, starred)
	ua.IsStarred = starred
	if starred {
		now := time.Now().UTC()
		ua.StarredAt = &now
	} else {
		ua.StarredAt = nil
	}

	if err := service.repo.UpsertUserAlbum(context, ua); err != nil {
		return err
	}
	service.bump(context, userID, user.CounterAlbumsLiked, delta)
	return nil
}

func (service *Service) HateAlbum(context context.Context, userID, albumID int, hated bool) error {
	ua, err := service.loadUserAlbum(context, userID, albumID)
	if err != nil {
		return err
	}

	delta := starDelta(ua.IsHated, hated)
	ua.IsHated = hated

	if err := service.repo.UpsertUserAlbum(context, ua); err != nil {
		return err
	}
	service.bump(context, userID, user.CounterAlbumsDisliked, delta)
	return nil
}

func (service *Service) RateAlbum(context context.Context, userID, albumID, rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}

	ua, err := service.loadUserAlbum(context, userID, albumID)
	if err != nil {
		return err
	}
	ua.Rating = rating
	return service.repo.UpsertUserAlbum(context, ua)
}

func (service *Service) MarkAlbumPlayed(context context.Context, userID, albumID int) error {
	return service.repo.MarkAlbumPlayed(context, userID, albumID, apikey.New())
}

func (service *Service) ListStarredAlbums(context context.Context, userID int) ([]*UserAlbum, error) {
	return service.repo.ListStarredAlbums(context, userID)
}

func (service *Service) loadUserSong(context context.Context, userID, songID int) (*UserSong, error) {
	us, err := service.repo.GetUserSong(context, userID, songID)
	if err == nil {
		return us, nil
	}
	if apperr.IsCode(err, apperr.CodeNotFound) {
		return &UserSong{UserID: userID, SongID: songID, APIKey: apikey.New()}, nil
	}
	return nil, err
}

func (service *Service) StarSong(context context.Context, userID, songID int, starred bool) error {
	us, err := service.loadUserSong(context, userID, songID)
	if err != nil {
		return err
	}

	delta := starDelta(us.IsStarred, starred)
	us.IsStarred = starred
	if starred {
		now := time.Now().UTC()
		us.StarredAt = &now
	} else {
		us.StarredAt = nil
	}

	if err := service.repo.UpsertUserSong(context, us); err != nil {
		return err
	}
	service.bump(context, userID, user.CounterSongsLiked, delta)
	return nil
}

func (service *Service) HateSong(context context.Context, userID, songID int, hated bool) error {
	us, err := service.loadUserSong(context, userID, songID)
	if err != nil {
		return err
	}

	delta := starDelta(us.IsHated, hated)
	us.IsHated = hated

	if err := service.repo.UpsertUserSong(context, us); err != nil {
		return err
	}
	service.bump(context, userID, user.CounterSongsDisliked, delta)
	return nil
}

func (service *Service) RateSong(context context.Context, userID, songID, rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}

	us, err := service.loadUserSong(context, userID, songID)
	if err != nil {
		return err
	}
	us.Rating = rating
	return service.repo.UpsertUserSong(context, us)
}

// MarkSongPlayed bumps the per-user play tally and the user's total.
func (service *Service) MarkSongPlayed(context context.Context, userID, songID int) error {
	if err := service.repo.MarkSongPlayed(context, userID, songID, apikey.New()); err != nil {
		return err
	}
	service.bump(context, userID, user.CounterSongsPlayed, 1)
	return nil
}

func (service *Service) ListStarredSongs(context context.Context, userID int) ([]*UserSong, error) {
	return service.repo.ListStarredSongs(context, userID)
}
