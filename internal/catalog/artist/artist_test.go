package artist

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/catalog/normalize"
	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

type fakeRepository struct {
	rows   map[int]*Artist
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[int]*Artist{}, nextID: 1}
}

func (f *fakeRepository) ListArtists(_ context.Context, _ Filter, _, _ int) ([]*Artist, int, error) {
	var out []*Artist
	for _, a := range f.rows {
		out = append(out, a)
	}
	return out, len(out), nil
}

func (f *fakeRepository) GetArtist(_ context.Context, id int) (*Artist, error) {
	if a, ok := f.rows[id]; ok {
		return a, nil
	}
	return nil, apperr.NotFound("Artist")
}

func (f *fakeRepository) GetArtistByAPIKey(_ context.Context, apiKey string) (*Artist, error) {
	for _, a := range f.rows {
		if a.APIKey == apiKey {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Artist")
}

func (f *fakeRepository) GetArtistByName(_ context.Context, name string) (*Artist, error) {
	for _, a := range f.rows {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Artist")
}

func (f *fakeRepository) GetArtistByExternalID(_ context.Context, column, value string) (*Artist, error) {
	for _, a := range f.rows {
		ids := map[string]*string{
			"musicbrainzid": a.MusicBrainzID,
			"spotifyid":     a.SpotifyID,
			"discogsid":     a.DiscogsID,
			"lastfmid":      a.LastFmID,
		}
		if id := ids[column]; id != nil && *id == value {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Artist")
}

func (f *fakeRepository) FindByNameNormalized(_ context.Context, nameNormalized string) ([]*Artist, error) {
	var out []*Artist
	for _, a := range f.rows {
		if a.NameNormalized == nameNormalized {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateArtist(_ context.Context, a *Artist) error {
	for _, existing := range f.rows {
		if existing.Name == a.Name {
			return apperr.DuplicateKey("ux_artists_name")
		}
	}
	a.ID = f.nextID
	f.nextID++
	f.rows[a.ID] = a
	return nil
}

func (f *fakeRepository) UpdateArtist(_ context.Context, a *Artist) error {
	if _, ok := f.rows[a.ID]; !ok {
		return apperr.NotFound("Artist")
	}
	f.rows[a.ID] = a
	return nil
}

func (f *fakeRepository) DeleteArtist(_ context.Context, id int) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeRepository) IncrementPlayedCount(_ context.Context, id int) error {
	a, ok := f.rows[id]
	if !ok {
		return apperr.NotFound("Artist")
	}
	a.PlayedCount++
	return nil
}

func (f *fakeRepository) RecomputeCounters(_ context.Context, _ int) error { return nil }

// fixedArticles satisfies ArticleSource without a settings registry.
type fixedArticles struct{}

func (fixedArticles) IgnoredArticles(context.Context) []string { return []string{"THE", "EL"} }

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, fixedArticles{}, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func strptr(s string) *string { return &s }

func TestCreateArtistDerivesComputedColumns(t *testing.T) {
	service, repo := newTestService()

	a := &Artist{LibraryID: 1, Name: "The Beatles", Directory: "the-beatles"}
	require.NoError(t, service.CreateArtist(context.Background(), a))

	stored := repo.rows[a.ID]
	assert.Equal(t, "THE BEATLES", stored.NameNormalized)
	require.NotNil(t, stored.SortName)
	assert.Equal(t, "Beatles", *stored.SortName)
	assert.NotEmpty(t, stored.APIKey)
}

func TestCreateArtistKeepsExplicitSortName(t *testing.T) {
	service, repo := newTestService()

	a := &Artist{LibraryID: 1, Name: "The Beatles", Directory: "d", SortName: strptr("Fab Four")}
	require.NoError(t, service.CreateArtist(context.Background(), a))
	assert.Equal(t, "Fab Four", *repo.rows[a.ID].SortName)
}

func TestCreateArtistValidation(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateArtist(context.Background(), &Artist{Name: "", Directory: ""})
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestUpsertArtistMatchesByExternalID(t *testing.T) {
	service, repo := newTestService()
	require.NoError(t, service.CreateArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Bjork", Directory: "bjork", MusicBrainzID: strptr("mbid-1"),
	}))

	// Same MusicBrainz id under a different display name resolves to the
	// existing row instead of creating a doppelganger.
	result, err := service.UpsertArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Björk", Directory: "bjork", MusicBrainzID: strptr("mbid-1"),
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "Bjork", result.Artist.Name)
	assert.Len(t, repo.rows, 1)
}

func TestUpsertArtistMatchesByExactName(t *testing.T) {
	service, repo := newTestService()
	require.NoError(t, service.CreateArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Radiohead", Directory: "radiohead",
	}))

	result, err := service.UpsertArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Radiohead", Directory: "radiohead", SpotifyID: strptr("sp-1"),
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Len(t, repo.rows, 1)

	// The refresh backfills the external id onto the existing row.
	require.NotNil(t, result.Artist.SpotifyID)
	assert.Equal(t, "sp-1", *result.Artist.SpotifyID)
}

func TestUpsertArtistNormalizedCollisionIsNotMerged(t *testing.T) {
	service, repo := newTestService()
	require.NoError(t, service.CreateArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Bjork", Directory: "bjork",
	}))

	// "Björk" normalizes to the same form but is a different exact name:
	// a new row is created and the collision is reported as a candidate.
	result, err := service.UpsertArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Björk", Directory: "bjork-2",
	})
	require.NoError(t, err)
	assert.True(t, result.Created)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "Bjork", result.Candidates[0].Name)
	assert.Len(t, repo.rows, 2)

	assert.Equal(t, normalize.Name("Bjork"), normalize.Name("Björk"))
}

func TestUpsertArtistCreatesWhenNothingMatches(t *testing.T) {
	service, repo := newTestService()

	result, err := service.UpsertArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Boards of Canada", Directory: "boc",
	})
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Empty(t, result.Candidates)
	assert.Len(t, repo.rows, 1)
}

func TestUpsertArtistSkipsRefreshOnLockedRow(t *testing.T) {
	service, repo := newTestService()
	require.NoError(t, service.CreateArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Radiohead", Directory: "radiohead",
	}))
	for _, a := range repo.rows {
		a.IsLocked = true
	}

	result, err := service.UpsertArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Radiohead", Directory: "radiohead", Biography: strptr("new bio"),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Artist.Biography)
}

func TestMarkPlayed(t *testing.T) {
	service, repo := newTestService()
	require.NoError(t, service.CreateArtist(context.Background(), &Artist{
		LibraryID: 1, Name: "Radiohead", Directory: "radiohead",
	}))

	require.NoError(t, service.MarkPlayed(context.Background(), 1))
	require.NoError(t, service.MarkPlayed(context.Background(), 1))
	assert.Equal(t, 2, repo.rows[1].PlayedCount)
}
