package song

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

type fakeRepository struct {
	rows   map[int]*Song
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[int]*Song{}, nextID: 1}
}

func (f *fakeRepository) ListSongs(_ context.Context, _ Filter, _, _ int) ([]*Song, int, error) {
	var out []*Song
	for _, s := range f.rows {
		out = append(out, s)
	}
	return out, len(out), nil
}

func (f *fakeRepository) ListSongsByDisc(_ context.Context, albumDiscID int) ([]*Song, error) {
	var out []*Song
	for _, s := range f.rows {
		if s.AlbumDiscID == albumDiscID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetSong(_ context.Context, id int) (*Song, error) {
	if s, ok := f.rows[id]; ok {
		return s, nil
	}
	return nil, apperr.NotFound("Song")
}

func (f *fakeRepository) GetSongByAPIKey(_ context.Context, apiKey string) (*Song, error) {
	for _, s := range f.rows {
		if s.APIKey == apiKey {
			return s, nil
		}
	}
	return nil, apperr.NotFound("Song")
}

func (f *fakeRepository) GetSongByFileHash(_ context.Context, fileHash string) (*Song, error) {
	for _, s := range f.rows {
		if s.FileHash == fileHash {
			return s, nil
		}
	}
	return nil, apperr.NotFound("Song")
}

func (f *fakeRepository) CreateSong(_ context.Context, s *Song) error {
	for _, existing := range f.rows {
		if existing.AlbumDiscID == s.AlbumDiscID && existing.SongNumber == s.SongNumber {
			return apperr.DuplicateKey("ux_songs_albumdiscid_songnumber")
		}
	}
	s.ID = f.nextID
	f.nextID++
	f.rows[s.ID] = s
	return nil
}

func (f *fakeRepository) UpdateSong(_ context.Context, s *Song) error {
	if _, ok := f.rows[s.ID]; !ok {
		return apperr.NotFound("Song")
	}
	f.rows[s.ID] = s
	return nil
}

func (f *fakeRepository) DeleteSong(_ context.Context, id int) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeRepository) IncrementPlayedCount(_ context.Context, id int) error {
	s, ok := f.rows[id]
	if !ok {
		return apperr.NotFound("Song")
	}
	s.PlayedCount++
	return nil
}

func (f *fakeRepository) GetLineage(_ context.Context, id int) (*Lineage, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Song")
	}
	return &Lineage{SongID: s.ID, DiscID: s.AlbumDiscID}, nil
}

type fixedBounds struct{}

func (fixedBounds) MaximumSongNumber(context.Context) int    { return 1000 }
func (fixedBounds) MinimumSongDuration(context.Context) int  { return 3 }
func (fixedBounds) IgnoredArticles(context.Context) []string { return []string{"THE"} }

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, fixedBounds{}, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func testHash() string { return strings.Repeat("a", 64) }

func validSong(discID, number int) *Song {
	return &Song{
		AlbumDiscID: discID,
		Title:       "The National Anthem",
		SongNumber:  number,
		FileName:    "04 - The National Anthem.flac",
		FileHash:    testHash(),
		Duration:    355,
	}
}

func TestCreateSongDerivesComputedColumns(t *testing.T) {
	service, repo := newTestService()

	s := validSong(1, 4)
	require.NoError(t, service.CreateSong(context.Background(), s))

	stored := repo.rows[s.ID]
	assert.Equal(t, "THE NATIONAL ANTHEM", stored.TitleNormalized)
	require.NotNil(t, stored.TitleSort)
	assert.Equal(t, "National Anthem", *stored.TitleSort)
	assert.NotEmpty(t, stored.APIKey)
}

func TestCreateSongValidatesFileHashWidth(t *testing.T) {
	service, _ := newTestService()

	s := validSong(1, 1)
	s.FileHash = "abc123"
	assert.True(t, apperr.IsCode(
		service.CreateSong(context.Background(), s), apperr.CodeValidation))

	s = validSong(1, 1)
	s.FileHash = strings.Repeat("a", 65)
	assert.True(t, apperr.IsCode(
		service.CreateSong(context.Background(), s), apperr.CodeValidation))
}

func TestCreateSongValidatesBounds(t *testing.T) {
	service, _ := newTestService()

	s := validSong(1, 0)
	assert.True(t, apperr.IsCode(
		service.CreateSong(context.Background(), s), apperr.CodeInvalidRange))

	s = validSong(1, 1001)
	assert.True(t, apperr.IsCode(
		service.CreateSong(context.Background(), s), apperr.CodeInvalidRange))

	s = validSong(1, 1)
	s.Duration = 2
	assert.True(t, apperr.IsCode(
		service.CreateSong(context.Background(), s), apperr.CodeInvalidRange))
}

func TestSongNumbersCollidePerDiscOnly(t *testing.T) {
	service, _ := newTestService()

	require.NoError(t, service.CreateSong(context.Background(), validSong(1, 4)))

	// Same number on another disc is fine.
	require.NoError(t, service.CreateSong(context.Background(), validSong(2, 4)))

	err := service.CreateSong(context.Background(), validSong(1, 4))
	assert.True(t, apperr.IsCode(err, apperr.CodeDuplicateKey))
}

func TestFindDuplicateByFileHash(t *testing.T) {
	service, _ := newTestService()
	s := validSong(1, 4)
	require.NoError(t, service.CreateSong(context.Background(), s))

	found, err := service.FindDuplicate(context.Background(), testHash())
	require.NoError(t, err)
	assert.Equal(t, s.ID, found.ID)

	_, err = service.FindDuplicate(context.Background(), strings.Repeat("b", 64))
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestMarkPlayed(t *testing.T) {
	service, repo := newTestService()
	s := validSong(1, 4)
	require.NoError(t, service.CreateSong(context.Background(), s))

	require.NoError(t, service.MarkPlayed(context.Background(), s.ID))
	require.NoError(t, service.MarkPlayed(context.Background(), s.ID))
	assert.Equal(t, 2, repo.rows[s.ID].PlayedCount)
}
