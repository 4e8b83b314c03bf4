package scrobble

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/catalog/song"
	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

// fakeRepository dedups on the natural key like the store does.
type fakeRepository struct {
	rows   []*Scrobble
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func naturalKey(s *Scrobble) string {
	return fmt.Sprintf("%d|%s|%d|%d", s.UserID, s.ServiceURL, s.SongID, s.PlayTimeInMs)
}

func (f *fakeRepository) ListScrobbles(_ context.Context, userID int, _, _ int) ([]*Scrobble, int, error) {
	var out []*Scrobble
	for _, s := range f.rows {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepository) InsertScrobble(_ context.Context, s *Scrobble) (bool, error) {
	for _, existing := range f.rows {
		if naturalKey(existing) == naturalKey(s) {
			return false, nil
		}
	}
	s.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, s)
	return true, nil
}

func (f *fakeRepository) DeleteScrobble(_ context.Context, id int) error {
	for i, s := range f.rows {
		if s.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Scrobble")
}

type fixedFlags struct{ enabled bool }

func (f fixedFlags) ScrobblingEnabled(context.Context) bool { return f.enabled }

type fixedLineage struct{}

func (fixedLineage) SongLineage(_ context.Context, id int) (*song.Lineage, error) {
	return &song.Lineage{SongID: id, DiscID: 20, AlbumID: 30, ArtistID: 40}, nil
}

// countingSink tallies every play notification it receives.
type countingSink struct {
	userSongPlays  map[int]int
	userAlbumPlays map[int]int
	songPlays      map[int]int
	albumPlays     map[int]int
	artistPlays    map[int]int
}

func newCountingSink() *countingSink {
	return &countingSink{
		userSongPlays:  map[int]int{},
		userAlbumPlays: map[int]int{},
		songPlays:      map[int]int{},
		albumPlays:     map[int]int{},
		artistPlays:    map[int]int{},
	}
}

func (c *countingSink) MarkSongPlayed(_ context.Context, _, songID int) error {
	c.userSongPlays[songID]++
	return nil
}

func (c *countingSink) MarkAlbumPlayed(_ context.Context, _, albumID int) error {
	c.userAlbumPlays[albumID]++
	return nil
}

type countingCatalog struct{ sink *countingSink }

func (c countingCatalog) MarkSongPlayed(_ context.Context, songID int) error {
	c.sink.songPlays[songID]++
	return nil
}

func (c countingCatalog) MarkAlbumPlayed(_ context.Context, albumID int) error {
	c.sink.albumPlays[albumID]++
	return nil
}

func (c countingCatalog) MarkArtistPlayed(_ context.Context, artistID int) error {
	c.sink.artistPlays[artistID]++
	return nil
}

func newTestService(enabled bool) (*Service, *fakeRepository, *countingSink) {
	repo := newFakeRepository()
	sink := newCountingSink()
	service := NewService(repo, fixedFlags{enabled}, fixedLineage{}, sink,
		countingCatalog{sink}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return service, repo, sink
}

func TestRecordCountsThroughTheHierarchy(t *testing.T) {
	service, repo, sink := newTestService(true)

	s := &Scrobble{UserID: 1, SongID: 10, PlayTimeInMs: 181000}
	require.NoError(t, service.Record(context.Background(), s))

	require.Len(t, repo.rows, 1)
	assert.False(t, s.ScrobbledAt.IsZero())
	assert.NotEmpty(t, s.APIKey)

	assert.Equal(t, 1, sink.userSongPlays[10])
	assert.Equal(t, 1, sink.userAlbumPlays[30])
	assert.Equal(t, 1, sink.songPlays[10])
	assert.Equal(t, 1, sink.albumPlays[30])
	assert.Equal(t, 1, sink.artistPlays[40])
}

func TestRecordAbsorbsReplay(t *testing.T) {
	service, repo, sink := newTestService(true)

	first := &Scrobble{UserID: 1, SongID: 10, PlayTimeInMs: 181000}
	require.NoError(t, service.Record(context.Background(), first))

	// The identical natural key again: no new row, nothing counted twice.
	replay := &Scrobble{UserID: 1, SongID: 10, PlayTimeInMs: 181000}
	require.NoError(t, service.Record(context.Background(), replay))

	assert.Len(t, repo.rows, 1)
	assert.Equal(t, 1, sink.userSongPlays[10])
	assert.Equal(t, 1, sink.songPlays[10])
}

func TestRecordDistinctPlayTimesAreDistinctPlays(t *testing.T) {
	service, repo, sink := newTestService(true)

	require.NoError(t, service.Record(context.Background(),
		&Scrobble{UserID: 1, SongID: 10, PlayTimeInMs: 181000}))
	require.NoError(t, service.Record(context.Background(),
		&Scrobble{UserID: 1, SongID: 10, PlayTimeInMs: 185000}))

	assert.Len(t, repo.rows, 2)
	assert.Equal(t, 2, sink.songPlays[10])
}

func TestRecordSkipsWhenScrobblingDisabled(t *testing.T) {
	service, repo, sink := newTestService(false)

	require.NoError(t, service.Record(context.Background(),
		&Scrobble{UserID: 1, SongID: 10, PlayTimeInMs: 181000}))

	assert.Empty(t, repo.rows)
	assert.Empty(t, sink.songPlays)
}

func TestRecordRejectsNegativePlayTime(t *testing.T) {
	service, repo, _ := newTestService(true)

	err := service.Record(context.Background(),
		&Scrobble{UserID: 1, SongID: 10, PlayTimeInMs: -1})
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidRange))
	assert.Empty(t, repo.rows)
}
