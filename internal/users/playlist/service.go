package playlist

import (
	"context"
	"log/slog"

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

func (service *Service) ListPlaylists(context context.Context, userID int) ([]*Playlist, error) {
	return service.repo.ListPlaylists(context, userID)
}

func (service *Service) ListPublicPlaylists(context context.Context, limit, offset int) ([]*Playlist, int, error) {
	return service.repo.ListPublicPlaylists(context, limit, offset)
}

func (service *Service) GetPlaylist(context context.Context, id int) (*Playlist, error) {
	return service.repo.GetPlaylist(context, id)
}

func (service *Service) GetPlaylistByAPIKey(context context.Context, key string) (*Playlist, error) {
	return service.repo.GetPlaylistByAPIKey(context, key)
}

func (service *Service) validate(p *Playlist) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, p.Name).MaxLen(FieldName, p.Name, constants.MaxGeneralInputLength)
	if p.Comment != nil {
		validator.MaxLen(FieldComment, *p.Comment, constants.MaxGeneralInputLength)
	}
	return validator.Err()
}

// CreatePlaylist adds a playlist for its owner. Names collide per owner
// only; the store reports the (userid, name) clash as a duplicate-key error.
func (service *Service) CreatePlaylist(context context.Context, p *Playlist) error {
	if err := service.validate(p); err != nil {
		return err
	}
	if p.APIKey == "" {
		p.APIKey = apikey.New()
	}

	if err := service.repo.CreatePlaylist(context, p); err != nil {
		return err
	}

	service.logger.Info("playlist_created", slog.Int("user_id", p.UserID), slog.String("name", p.Name))
	return nil
}

func (service *Service) UpdatePlaylist(context context.Context, id int, p *Playlist) error {
	p.ID = id
	if err := service.validate(p); err != nil {
		return err
	}
	return service.repo.UpdatePlaylist(context, p)
}

// DeletePlaylist removes the playlist and its membership rows. The songs
// themselves are untouched.
func (service *Service) DeletePlaylist(context context.Context, id int) error {
	existing, err := service.repo.GetPlaylist(context, id)
	if err != nil {
		return err
	}
	if existing.IsLocked {
		return apperr.ValidationError("playlist is locked")
	}

	if err := service.repo.DeletePlaylist(context, id); err != nil {
		return err
	}

	service.logger.Info("playlist_deleted", slog.Int("playlist_id", id))
	return nil
}

func (service *Service) ListSongs(context context.Context, playlistID int) ([]*PlaylistSong, error) {
	return service.repo.ListSongs(context, playlistID)
}

// AddSong appends a song to the end of the playlist and refreshes the
// denormalized counters.
func (service *Service) AddSong(context context.Context, playlistID, songID int) error {
	if err := service.repo.AppendSong(context, playlistID, songID); err != nil {
		return err
	}
	return service.repo.RecomputeCounters(context, playlistID)
}

func (service *Service) RemoveSong(context context.Context, playlistID, songID int) error {
	if err := service.repo.RemoveSong(context, playlistID, songID); err != nil {
		return err
	}
	return service.repo.RecomputeCounters(context, playlistID)
}

// Reorder rewrites the playlist order to match songIDs. The new order must
// be a permutation of the current membership: every song exactly once,
// nothing added, nothing missing.
func (service *Service) Reorder(context context.Context, playlistID int, songIDs []int) error {
	current, err := service.repo.ListSongs(context, playlistID)
	if err != nil {
		return err
	}

	if err := checkPermutation(current, songIDs); err != nil {
		return err
	}

	return service.repo.ReplaceOrder(context, playlistID, songIDs)
}

// checkPermutation verifies that songIDs is exactly the membership set of
// current, with no duplicates.
func checkPermutation(current []*PlaylistSong, songIDs []int) error {
	if len(songIDs) != len(current) {
		return apperr.ValidationError("new order must contain every playlist song exactly once")
	}

	members := make(map[int]bool, len(current))
	for _, ps := range current {
		members[ps.SongID] = true
	}

	seen := make(map[int]bool, len(songIDs))
	for _, id := range songIDs {
		if !members[id] {
			return apperr.ValidationError("new order references a song not in the playlist")
		}
		if seen[id] {
			return apperr.ValidationError("new order lists a song more than once")
		}
		seen[id] = true
	}

	return nil
}
