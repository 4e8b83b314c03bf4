package album

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

type fakeRepository struct {
	albums map[int]*Album
	discs  map[int]*Disc
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{albums: map[int]*Album{}, discs: map[int]*Disc{}, nextID: 1}
}

func (f *fakeRepository) ListAlbums(_ context.Context, _ Filter, _, _ int) ([]*Album, int, error) {
	var out []*Album
	for _, a := range f.albums {
		out = append(out, a)
	}
	return out, len(out), nil
}

func (f *fakeRepository) GetAlbum(_ context.Context, id int) (*Album, error) {
	if a, ok := f.albums[id]; ok {
		return a, nil
	}
	return nil, apperr.NotFound("Album")
}

func (f *fakeRepository) GetAlbumByAPIKey(_ context.Context, apiKey string) (*Album, error) {
	for _, a := range f.albums {
		if a.APIKey == apiKey {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Album")
}

func (f *fakeRepository) GetAlbumByName(_ context.Context, artistID int, name string) (*Album, error) {
	for _, a := range f.albums {
		if a.ArtistID == artistID && a.Name == name {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Album")
}

func (f *fakeRepository) GetAlbumByExternalID(_ context.Context, column, value string) (*Album, error) {
	for _, a := range f.albums {
		var candidate *string
		switch column {
		case "musicbrainzid":
			candidate = a.MusicBrainzID
		case "spotifyid":
			candidate = a.SpotifyID
		case "discogsid":
			candidate = a.DiscogsID
		case "lastfmid":
			candidate = a.LastFmID
		}
		if candidate != nil && *candidate == value {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Album")
}

func (f *fakeRepository) CreateAlbum(_ context.Context, a *Album) error {
	for _, existing := range f.albums {
		if existing.ArtistID == a.ArtistID && existing.Name == a.Name {
			return apperr.DuplicateKey("ux_albums_artistid_name")
		}
	}
	a.ID = f.nextID
	f.nextID++
	f.albums[a.ID] = a
	return nil
}

func (f *fakeRepository) UpdateAlbum(_ context.Context, a *Album) error {
	if _, ok := f.albums[a.ID]; !ok {
		return apperr.NotFound("Album")
	}
	f.albums[a.ID] = a
	return nil
}

func (f *fakeRepository) DeleteAlbum(_ context.Context, id int) error {
	delete(f.albums, id)
	return nil
}

func (f *fakeRepository) IncrementPlayedCount(_ context.Context, id int) error {
	a, ok := f.albums[id]
	if !ok {
		return apperr.NotFound("Album")
	}
	a.PlayedCount++
	return nil
}

func (f *fakeRepository) RecomputeCounters(_ context.Context, _ int) error { return nil }

func (f *fakeRepository) ListDiscs(_ context.Context, albumID int) ([]*Disc, error) {
	var out []*Disc
	for _, d := range f.discs {
		if d.AlbumID == albumID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetDisc(_ context.Context, id int) (*Disc, error) {
	if d, ok := f.discs[id]; ok {
		return d, nil
	}
	return nil, apperr.NotFound("AlbumDisc")
}

func (f *fakeRepository) CreateDisc(_ context.Context, d *Disc) error {
	for _, existing := range f.discs {
		if existing.AlbumID == d.AlbumID && existing.DiscNumber == d.DiscNumber {
			return apperr.DuplicateKey("ux_albumdiscs_albumid_discnumber")
		}
	}
	d.ID = f.nextID
	f.nextID++
	f.discs[d.ID] = d
	return nil
}

func (f *fakeRepository) UpdateDisc(_ context.Context, d *Disc) error {
	if _, ok := f.discs[d.ID]; !ok {
		return apperr.NotFound("AlbumDisc")
	}
	f.discs[d.ID] = d
	return nil
}

func (f *fakeRepository) DeleteDisc(_ context.Context, id int) error {
	delete(f.discs, id)
	return nil
}

// fixedBounds stands in for the settings registry.
type fixedBounds struct{}

func (fixedBounds) MinimumAlbumYear(context.Context) int     { return 1860 }
func (fixedBounds) MaximumAlbumYear(context.Context) int     { return 2030 }
func (fixedBounds) MaximumDiscNumber(context.Context) int    { return 50 }
func (fixedBounds) IgnoredArticles(context.Context) []string { return []string{"THE"} }

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, fixedBounds{}, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func released(year int) time.Time {
	return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestCreateAlbumDerivesComputedColumns(t *testing.T) {
	service, repo := newTestService()

	a := &Album{ArtistID: 1, LibraryID: 1, Name: "The Wall", Directory: "the-wall", ReleaseDate: released(1979)}
	require.NoError(t, service.CreateAlbum(context.Background(), a))

	stored := repo.albums[a.ID]
	assert.Equal(t, "THE WALL", stored.NameNormalized)
	require.NotNil(t, stored.SortName)
	assert.Equal(t, "Wall", *stored.SortName)
	assert.NotEmpty(t, stored.APIKey)
}

func TestCreateAlbumRejectsYearOutOfBounds(t *testing.T) {
	service, _ := newTestService()

	for _, year := range []int{1859, 2031} {
		a := &Album{ArtistID: 1, Name: "X", Directory: "x", ReleaseDate: released(year)}
		err := service.CreateAlbum(context.Background(), a)
		assert.True(t, apperr.IsCode(err, apperr.CodeInvalidRange), "year %d", year)
	}

	// Boundary years are accepted.
	a := &Album{ArtistID: 1, Name: "Oldest", Directory: "o", ReleaseDate: released(1860)}
	assert.NoError(t, service.CreateAlbum(context.Background(), a))
}

func TestAlbumNamesCollidePerArtistOnly(t *testing.T) {
	service, _ := newTestService()

	require.NoError(t, service.CreateAlbum(context.Background(),
		&Album{ArtistID: 1, Name: "Greatest Hits", Directory: "gh1", ReleaseDate: released(1990)}))

	// Same name under a different artist is fine.
	require.NoError(t, service.CreateAlbum(context.Background(),
		&Album{ArtistID: 2, Name: "Greatest Hits", Directory: "gh2", ReleaseDate: released(1995)}))

	// Same artist, same name collides.
	err := service.CreateAlbum(context.Background(),
		&Album{ArtistID: 1, Name: "Greatest Hits", Directory: "gh3", ReleaseDate: released(2000)})
	require.True(t, apperr.IsCode(err, apperr.CodeDuplicateKey))
	assert.Equal(t, "ux_albums_artistid_name", apperr.As(err).Scope)
}

func TestUpsertAlbumRefreshesExisting(t *testing.T) {
	service, repo := newTestService()
	require.NoError(t, service.CreateAlbum(context.Background(),
		&Album{ArtistID: 1, Name: "OK Computer", Directory: "okc", ReleaseDate: released(1997)}))

	result, err := service.UpsertAlbum(context.Background(), &Album{
		ArtistID: 1, Name: "OK Computer", Directory: "okc",
		ReleaseDate: released(1997), Genres: []string{"rock"},
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Len(t, repo.albums, 1)
	assert.Equal(t, []string{"rock"}, result.Album.Genres)
}

func TestUpsertAlbumMatchesByExternalID(t *testing.T) {
	service, repo := newTestService()
	mbid := "9c9f1380-2516-4fc9-a3e6-f9f61941d090"

	require.NoError(t, service.CreateAlbum(context.Background(), &Album{
		ArtistID: 1, Name: "OK Computer", Directory: "okc",
		ReleaseDate: released(1997), MusicBrainzID: &mbid,
	}))

	// A renamed re-scan carrying the same identifier refreshes the row
	// instead of colliding on the name indexes.
	result, err := service.UpsertAlbum(context.Background(), &Album{
		ArtistID: 1, Name: "OK Computer (Remastered)", Directory: "okc",
		ReleaseDate: released(1997), MusicBrainzID: &mbid, Genres: []string{"rock"},
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Len(t, repo.albums, 1)
	assert.Equal(t, []string{"rock"}, result.Album.Genres)
}

func TestUpsertAlbumBackfillsExternalIDs(t *testing.T) {
	service, _ := newTestService()
	spotify := "4LH4d3cOWNNsVw41Gqt2kv"

	require.NoError(t, service.CreateAlbum(context.Background(), &Album{
		ArtistID: 1, Name: "OK Computer", Directory: "okc", ReleaseDate: released(1997),
	}))

	result, err := service.UpsertAlbum(context.Background(), &Album{
		ArtistID: 1, Name: "OK Computer", Directory: "okc",
		ReleaseDate: released(1997), SpotifyID: &spotify,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Album.SpotifyID)
	assert.Equal(t, spotify, *result.Album.SpotifyID)
}

func TestUpsertAlbumLockedRowIsUntouched(t *testing.T) {
	service, repo := newTestService()
	require.NoError(t, service.CreateAlbum(context.Background(),
		&Album{ArtistID: 1, Name: "OK Computer", Directory: "okc", ReleaseDate: released(1997)}))

	for _, a := range repo.albums {
		a.IsLocked = true
	}

	result, err := service.UpsertAlbum(context.Background(), &Album{
		ArtistID: 1, Name: "OK Computer", Directory: "okc",
		ReleaseDate: released(1997), Genres: []string{"rock"},
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Empty(t, result.Album.Genres)
}

func TestAddDiscValidatesDiscNumber(t *testing.T) {
	service, _ := newTestService()

	assert.True(t, apperr.IsCode(
		service.AddDisc(context.Background(), &Disc{AlbumID: 1, DiscNumber: 0}),
		apperr.CodeInvalidRange))
	assert.True(t, apperr.IsCode(
		service.AddDisc(context.Background(), &Disc{AlbumID: 1, DiscNumber: 51}),
		apperr.CodeInvalidRange))
	assert.NoError(t, service.AddDisc(context.Background(), &Disc{AlbumID: 1, DiscNumber: 1}))
}

func TestAddDiscDuplicateNumberInAlbum(t *testing.T) {
	service, _ := newTestService()

	require.NoError(t, service.AddDisc(context.Background(), &Disc{AlbumID: 1, DiscNumber: 1}))
	err := service.AddDisc(context.Background(), &Disc{AlbumID: 1, DiscNumber: 1})
	assert.True(t, apperr.IsCode(err, apperr.CodeDuplicateKey))

	// The same disc number on another album is fine.
	assert.NoError(t, service.AddDisc(context.Background(), &Disc{AlbumID: 2, DiscNumber: 1}))
}
