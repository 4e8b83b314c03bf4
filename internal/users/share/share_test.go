package share

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
	rows   map[int]*Share
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[int]*Share{}, nextID: 1}
}

func (f *fakeRepository) ListShares(_ context.Context, userID int) ([]*Share, error) {
	var out []*Share
	for _, s := range f.rows {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetShare(_ context.Context, id int) (*Share, error) {
	if s, ok := f.rows[id]; ok {
		return s, nil
	}
	return nil, apperr.NotFound("Share")
}

func (f *fakeRepository) GetShareByAPIKey(_ context.Context, apiKey string) (*Share, error) {
	for _, s := range f.rows {
		if s.APIKey == apiKey {
			return s, nil
		}
	}
	return nil, apperr.NotFound("Share")
}

func (f *fakeRepository) CreateShare(_ context.Context, s *Share) error {
	s.ID = f.nextID
	f.nextID++
	s.CreatedAt = time.Now().UTC()
	f.rows[s.ID] = s
	return nil
}

func (f *fakeRepository) UpdateShare(_ context.Context, s *Share) error {
	if _, ok := f.rows[s.ID]; !ok {
		return apperr.NotFound("Share")
	}
	f.rows[s.ID] = s
	return nil
}

func (f *fakeRepository) RecordVisit(_ context.Context, id int) error {
	s, ok := f.rows[id]
	if !ok {
		return apperr.NotFound("Share")
	}
	s.VisitCount++
	now := time.Now().UTC()
	s.LastVisitedAt = &now
	return nil
}

func (f *fakeRepository) DeleteShare(_ context.Context, id int) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeRepository) DeleteExpired(_ context.Context) (int, error) {
	now := time.Now()
	removed := 0
	for id, s := range f.rows {
		if s.IsExpired(now) {
			delete(f.rows, id)
			removed++
		}
	}
	return removed, nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&Share{}).IsExpired(now))
	assert.False(t, (&Share{ExpiresAt: &future}).IsExpired(now))
	assert.True(t, (&Share{ExpiresAt: &past}).IsExpired(now))
}

func TestSongIDList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", nil},
		{"single", "42", []int{42}},
		{"several", "1|2|3", []int{1, 2, 3}},
		{"malformed segment skipped", "1|x|3", []int{1, 3}},
		{"whitespace tolerated", " 1 | 2 ", []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Share{SongIDs: tt.input}
			assert.Equal(t, tt.want, s.SongIDList())
		})
	}
}

func TestCreateShareRoundTrip(t *testing.T) {
	service, _ := newTestService()
	expires := time.Now().Add(24 * time.Hour)

	s, err := service.CreateShare(context.Background(), 1, []int{5, 9, 3}, &expires, true)
	require.NoError(t, err)

	assert.Equal(t, "5|9|3", s.SongIDs)
	assert.Equal(t, []int{5, 9, 3}, s.SongIDList())
	assert.NotEmpty(t, s.APIKey)
	assert.True(t, s.IsDownloadable)
}

func TestCreateShareRejectsEmptySongList(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateShare(context.Background(), 1, nil, nil, false)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestCreateShareRejectsPastExpiry(t *testing.T) {
	service, _ := newTestService()
	past := time.Now().Add(-time.Minute)

	_, err := service.CreateShare(context.Background(), 1, []int{1}, &past, false)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidRange))
}

func TestResolveCountsVisit(t *testing.T) {
	service, repo := newTestService()
	created, err := service.CreateShare(context.Background(), 1, []int{1}, nil, false)
	require.NoError(t, err)

	got, err := service.Resolve(context.Background(), created.APIKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	stored := repo.rows[created.ID]
	assert.Equal(t, 1, stored.VisitCount)
	assert.NotNil(t, stored.LastVisitedAt)
}

func TestResolveExpiredShareIsNotFound(t *testing.T) {
	service, repo := newTestService()
	past := time.Now().Add(-time.Hour)
	repo.rows[1] = &Share{ID: 1, UserID: 1, SongIDs: "1", ExpiresAt: &past, APIKey: "token"}

	_, err := service.Resolve(context.Background(), "token")
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	// Lapsed visits are not tallied.
	assert.Equal(t, 0, repo.rows[1].VisitCount)
}

func TestSweepExpired(t *testing.T) {
	service, repo := newTestService()
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	repo.rows[1] = &Share{ID: 1, ExpiresAt: &past}
	repo.rows[2] = &Share{ID: 2, ExpiresAt: &future}
	repo.rows[3] = &Share{ID: 3}

	removed, err := service.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Len(t, repo.rows, 2)
}
