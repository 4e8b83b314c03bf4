package contributor

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

type fakeRepository struct {
	rows   map[int]*Contributor
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[int]*Contributor{}, nextID: 1}
}

func (f *fakeRepository) ListByAlbum(_ context.Context, albumID int) ([]*Contributor, error) {
	var out []*Contributor
	for _, c := range f.rows {
		if c.AlbumID == albumID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListBySong(_ context.Context, songID int) ([]*Contributor, error) {
	var out []*Contributor
	for _, c := range f.rows {
		if c.SongID != nil && *c.SongID == songID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetContributor(_ context.Context, id int) (*Contributor, error) {
	if c, ok := f.rows[id]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("Contributor")
}

func (f *fakeRepository) CreateContributor(_ context.Context, c *Contributor) error {
	c.ID = f.nextID
	f.nextID++
	f.rows[c.ID] = c
	return nil
}

func (f *fakeRepository) UpdateContributor(_ context.Context, c *Contributor) error {
	if _, ok := f.rows[c.ID]; !ok {
		return apperr.NotFound("Contributor")
	}
	f.rows[c.ID] = c
	return nil
}

func (f *fakeRepository) DeleteContributor(_ context.Context, id int) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeRepository) DeleteByAlbum(_ context.Context, albumID int) error {
	for id, c := range f.rows {
		if c.AlbumID == albumID {
			delete(f.rows, id)
		}
	}
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestCreateCatalogedCredit(t *testing.T) {
	service, repo := newTestService()

	c := Cataloged(1, 7, "Producer", 100)
	require.NoError(t, service.CreateContributor(context.Background(), c))

	stored := repo.rows[c.ID]
	assert.True(t, stored.IsCataloged())
	assert.NotEmpty(t, stored.APIKey)
}

func TestCreateFreeTextCredit(t *testing.T) {
	service, _ := newTestService()

	c := FreeText(1, "Bob Ludwig", "Mastering", 100)
	require.NoError(t, service.CreateContributor(context.Background(), c))
	assert.False(t, c.IsCataloged())
}

func TestCreditVariantIsExclusive(t *testing.T) {
	service, _ := newTestService()
	artistID := 7
	name := "Bob Ludwig"

	// Neither side set.
	err := service.CreateContributor(context.Background(),
		&Contributor{Role: "Producer", AlbumID: 1})
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	// Both sides set.
	err = service.CreateContributor(context.Background(),
		&Contributor{Role: "Producer", AlbumID: 1, ArtistID: &artistID, ContributorName: &name})
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestCreateCreditRequiresRole(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateContributor(context.Background(), Cataloged(1, 7, "", 100))
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestSongScopedCredit(t *testing.T) {
	service, _ := newTestService()

	c := Cataloged(1, 7, "Guitar", 100).ForSong(42)
	require.NoError(t, service.CreateContributor(context.Background(), c))

	bySong, err := service.ListBySong(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, bySong, 1)
}

func TestReplaceAlbumCredits(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, service.CreateContributor(ctx, Cataloged(1, 7, "Producer", 100)))
	require.NoError(t, service.CreateContributor(ctx, FreeText(1, "Old Name", "Engineer", 101)))
	require.NoError(t, service.CreateContributor(ctx, Cataloged(2, 9, "Producer", 100)))

	replacement := []*Contributor{
		FreeText(1, "New Name", "Mixing", 102),
	}
	require.NoError(t, service.ReplaceAlbumCredits(ctx, 1, replacement))

	byAlbum, err := service.ListByAlbum(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byAlbum, 1)
	assert.Equal(t, "Mixing", byAlbum[0].Role)

	// Other albums' credits are untouched.
	other, err := service.ListByAlbum(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 1)
	assert.Len(t, repo.rows, 2)
}

func TestReplaceAlbumCreditsValidatesBeforeDeleting(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, service.CreateContributor(ctx, Cataloged(1, 7, "Producer", 100)))

	bad := []*Contributor{{Role: "Mixing", AlbumID: 1}}
	require.Error(t, service.ReplaceAlbumCredits(ctx, 1, bad))

	// The original set survives a rejected replacement.
	byAlbum, err := service.ListByAlbum(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byAlbum, 1)
}
