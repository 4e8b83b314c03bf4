package playlist

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

type fakeRepository struct {
	playlists map[int]*Playlist
	songs     map[int][]*PlaylistSong
	nextID    int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{playlists: map[int]*Playlist{}, songs: map[int][]*PlaylistSong{}, nextID: 1}
}

func (f *fakeRepository) ListPlaylists(_ context.Context, userID int) ([]*Playlist, error) {
	var out []*Playlist
	for _, p := range f.playlists {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListPublicPlaylists(_ context.Context, _, _ int) ([]*Playlist, int, error) {
	var out []*Playlist
	for _, p := range f.playlists {
		if p.IsPublic {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepository) GetPlaylist(_ context.Context, id int) (*Playlist, error) {
	if p, ok := f.playlists[id]; ok {
		return p, nil
	}
	return nil, apperr.NotFound("Playlist")
}

func (f *fakeRepository) GetPlaylistByAPIKey(_ context.Context, apiKey string) (*Playlist, error) {
	for _, p := range f.playlists {
		if p.APIKey == apiKey {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Playlist")
}

func (f *fakeRepository) CreatePlaylist(_ context.Context, p *Playlist) error {
	for _, existing := range f.playlists {
		if existing.UserID == p.UserID && existing.Name == p.Name {
			return apperr.DuplicateKey("ux_playlists_userid_name")
		}
	}
	p.ID = f.nextID
	f.nextID++
	f.playlists[p.ID] = p
	return nil
}

func (f *fakeRepository) UpdatePlaylist(_ context.Context, p *Playlist) error {
	if _, ok := f.playlists[p.ID]; !ok {
		return apperr.NotFound("Playlist")
	}
	f.playlists[p.ID] = p
	return nil
}

func (f *fakeRepository) DeletePlaylist(_ context.Context, id int) error {
	delete(f.playlists, id)
	delete(f.songs, id)
	return nil
}

func (f *fakeRepository) ListSongs(_ context.Context, playlistID int) ([]*PlaylistSong, error) {
	out := append([]*PlaylistSong(nil), f.songs[playlistID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].PlaylistOrder < out[j].PlaylistOrder })
	return out, nil
}

func (f *fakeRepository) AppendSong(_ context.Context, playlistID, songID int) error {
	for _, ps := range f.songs[playlistID] {
		if ps.SongID == songID {
			return apperr.DuplicateKey("pk_playlistsongs")
		}
	}
	f.songs[playlistID] = append(f.songs[playlistID], &PlaylistSong{
		SongID:        songID,
		PlaylistID:    playlistID,
		PlaylistOrder: len(f.songs[playlistID]) + 1,
	})
	return nil
}

func (f *fakeRepository) RemoveSong(_ context.Context, playlistID, songID int) error {
	rows := f.songs[playlistID]
	for i, ps := range rows {
		if ps.SongID == songID {
			f.songs[playlistID] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("PlaylistSong")
}

func (f *fakeRepository) ReplaceOrder(_ context.Context, playlistID int, songIDs []int) error {
	byID := map[int]*PlaylistSong{}
	for _, ps := range f.songs[playlistID] {
		byID[ps.SongID] = ps
	}
	for i, songID := range songIDs {
		byID[songID].PlaylistOrder = i + 1
	}
	return nil
}

func (f *fakeRepository) RecomputeCounters(_ context.Context, playlistID int) error {
	p, ok := f.playlists[playlistID]
	if !ok {
		return apperr.NotFound("Playlist")
	}
	p.SongCount = len(f.songs[playlistID])
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func create(t *testing.T, service *Service, userID int, name string) *Playlist {
	t.Helper()
	p := &Playlist{UserID: userID, Name: name}
	require.NoError(t, service.CreatePlaylist(context.Background(), p))
	return p
}

func TestPlaylistNamesCollidePerOwnerOnly(t *testing.T) {
	service, _ := newTestService()

	create(t, service, 1, "Favorites")

	// Another user can reuse the name.
	create(t, service, 2, "Favorites")

	// The same user cannot.
	err := service.CreatePlaylist(context.Background(), &Playlist{UserID: 1, Name: "Favorites"})
	require.True(t, apperr.IsCode(err, apperr.CodeDuplicateKey))
	assert.Equal(t, "ux_playlists_userid_name", apperr.As(err).Scope)
}

func TestAddSongRefreshesCounters(t *testing.T) {
	service, repo := newTestService()
	p := create(t, service, 1, "Favorites")

	require.NoError(t, service.AddSong(context.Background(), p.ID, 10))
	require.NoError(t, service.AddSong(context.Background(), p.ID, 11))
	assert.Equal(t, 2, repo.playlists[p.ID].SongCount)

	require.NoError(t, service.RemoveSong(context.Background(), p.ID, 10))
	assert.Equal(t, 1, repo.playlists[p.ID].SongCount)
}

func TestAddSongTwiceIsDuplicate(t *testing.T) {
	service, _ := newTestService()
	p := create(t, service, 1, "Favorites")

	require.NoError(t, service.AddSong(context.Background(), p.ID, 10))
	err := service.AddSong(context.Background(), p.ID, 10)
	assert.True(t, apperr.IsCode(err, apperr.CodeDuplicateKey))
}

func TestReorder(t *testing.T) {
	service, _ := newTestService()
	p := create(t, service, 1, "Favorites")
	ctx := context.Background()

	for _, songID := range []int{10, 11, 12} {
		require.NoError(t, service.AddSong(ctx, p.ID, songID))
	}

	require.NoError(t, service.Reorder(ctx, p.ID, []int{12, 10, 11}))

	songs, err := service.ListSongs(ctx, p.ID)
	require.NoError(t, err)
	got := make([]int, len(songs))
	for i, ps := range songs {
		got[i] = ps.SongID
	}
	assert.Equal(t, []int{12, 10, 11}, got)
}

func TestReorderRejectsNonPermutation(t *testing.T) {
	service, _ := newTestService()
	p := create(t, service, 1, "Favorites")
	ctx := context.Background()

	require.NoError(t, service.AddSong(ctx, p.ID, 10))
	require.NoError(t, service.AddSong(ctx, p.ID, 11))

	assert.Error(t, service.Reorder(ctx, p.ID, []int{10}))
	assert.Error(t, service.Reorder(ctx, p.ID, []int{10, 10}))
	assert.Error(t, service.Reorder(ctx, p.ID, []int{10, 99}))
}

func TestDeletePlaylistRefusesLocked(t *testing.T) {
	service, repo := newTestService()
	p := create(t, service, 1, "Favorites")
	repo.playlists[p.ID].IsLocked = true

	err := service.DeletePlaylist(context.Background(), p.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	repo.playlists[p.ID].IsLocked = false
	require.NoError(t, service.DeletePlaylist(context.Background(), p.ID))
	assert.Empty(t, repo.playlists)
}
