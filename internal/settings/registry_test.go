package settings

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository keeps settings in a map so registry behavior can be tested
// without a database.
type fakeRepository struct {
	rows map[string]*Setting
}

func newFakeRepository(seed map[string]string) *fakeRepository {
	repo := &fakeRepository{rows: map[string]*Setting{}}
	for k, v := range seed {
		repo.rows[k] = &Setting{Key: k, Value: v}
	}
	return repo
}

func (f *fakeRepository) ListSettings(_ context.Context) ([]*Setting, error) {
	out := make([]*Setting, 0, len(f.rows))
	for _, s := range f.rows {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepository) GetSetting(_ context.Context, key string) (*Setting, error) {
	return f.rows[key], nil
}

func (f *fakeRepository) UpsertSetting(_ context.Context, s *Setting) error {
	f.rows[s.Key] = s
	return nil
}

func (f *fakeRepository) DeleteSetting(_ context.Context, key string) error {
	delete(f.rows, key)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistry_GetAbsentKeyReturnsDefault(t *testing.T) {
	registry := NewRegistry(newFakeRepository(nil), nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))

	// Absence is never an error, just the caller's default.
	assert.Equal(t, "fallback", registry.Get(context.Background(), "no.such.key", "fallback"))
	assert.Equal(t, 42, registry.GetInt(context.Background(), "no.such.key", 42))
	assert.True(t, registry.GetBool(context.Background(), "no.such.key", true))
}

func TestRegistry_LoadThenGet(t *testing.T) {
	repo := newFakeRepository(map[string]string{
		KeyDoDeleteOriginal: "false",
		KeyDefaultPageSize:  "100",
	})
	registry := NewRegistry(repo, nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))

	assert.Equal(t, "false", registry.Get(context.Background(), KeyDoDeleteOriginal, "true"))
	assert.Equal(t, 100, registry.GetInt(context.Background(), KeyDefaultPageSize, 1))
}

func TestRegistry_SetWritesThroughAndInvalidates(t *testing.T) {
	repo := newFakeRepository(map[string]string{KeyDoDeleteOriginal: "false"})
	registry := NewRegistry(repo, nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))

	require.NoError(t, registry.Set(context.Background(), KeyDoDeleteOriginal, "true", nil))

	// The in-process snapshot reflects the write immediately.
	assert.Equal(t, "true", registry.Get(context.Background(), KeyDoDeleteOriginal, "false"))
	// And the store holds it too.
	assert.Equal(t, "true", repo.rows[KeyDoDeleteOriginal].Value)
}

func TestRegistry_KeyLookupIsCaseInsensitive(t *testing.T) {
	repo := newFakeRepository(map[string]string{KeyMaximumSongNumber: "500"})
	registry := NewRegistry(repo, nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))
	ctx := context.Background()

	// Writes land on the lowercase row; reads with the same camelCase key
	// must see them.
	require.NoError(t, registry.Set(ctx, "processing.doDeleteOriginal", "true", nil))
	assert.Equal(t, "true", registry.Get(ctx, "processing.doDeleteOriginal", "DEFAULT"))
	assert.Equal(t, "true", registry.Get(ctx, KeyDoDeleteOriginal, "DEFAULT"))
	assert.True(t, registry.GetBool(ctx, "Processing.DoDeleteOriginal", false))

	// Seeded lowercase rows resolve for camelCase readers too.
	assert.Equal(t, 500, registry.GetInt(ctx, "validation.maximumSongNumber", 1))
}

func TestRegistry_SetNormalizesKeyCase(t *testing.T) {
	registry := NewRegistry(newFakeRepository(nil), nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))

	require.NoError(t, registry.Set(context.Background(), "Processing.DoDeleteOriginal", "true", nil))
	assert.Equal(t, "true", registry.Get(context.Background(), KeyDoDeleteOriginal, "false"))
}

func TestRegistry_SetRejectsBlankKey(t *testing.T) {
	registry := NewRegistry(newFakeRepository(nil), nil, testLogger())
	assert.Error(t, registry.Set(context.Background(), "   ", "x", nil))
}

func TestRegistry_DeleteFallsBackToDefault(t *testing.T) {
	repo := newFakeRepository(map[string]string{KeyDefaultPageSize: "250"})
	registry := NewRegistry(repo, nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))
	require.Equal(t, 250, registry.GetInt(context.Background(), KeyDefaultPageSize, 1))

	require.NoError(t, registry.Delete(context.Background(), KeyDefaultPageSize))
	assert.Equal(t, 1, registry.GetInt(context.Background(), KeyDefaultPageSize, 1))
}

func TestRegistry_IgnoredArticles(t *testing.T) {
	registry := NewRegistry(newFakeRepository(nil), nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))

	// Seed default applies when the key is missing.
	articles := registry.IgnoredArticles(context.Background())
	assert.Contains(t, articles, "THE")
	assert.Contains(t, articles, "LOS")

	require.NoError(t, registry.Set(context.Background(), KeyIgnoredArticles, "DER|DIE|DAS", nil))
	assert.Equal(t, []string{"DER", "DIE", "DAS"}, registry.IgnoredArticles(context.Background()))
}

func TestRegistry_BoundsDefaults(t *testing.T) {
	registry := NewRegistry(newFakeRepository(nil), nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))

	ctx := context.Background()
	assert.Equal(t, DefaultMinimumAlbumYear, registry.MinimumAlbumYear(ctx))
	assert.Equal(t, DefaultMaximumAlbumYear, registry.MaximumAlbumYear(ctx))
	assert.Equal(t, DefaultMaximumSongNumber, registry.MaximumSongNumber(ctx))
	assert.Equal(t, DefaultMaximumDiscNumber, registry.MaximumDiscNumber(ctx))
}

func TestRegistry_GetDuration(t *testing.T) {
	repo := newFakeRepository(map[string]string{
		"scan.interval": "15m",
		"scan.badvalue": "soon",
	})
	registry := NewRegistry(repo, nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))

	ctx := context.Background()
	assert.Equal(t, 15*time.Minute, registry.GetDuration(ctx, "scan.interval", time.Hour))
	assert.Equal(t, time.Hour, registry.GetDuration(ctx, "scan.badvalue", time.Hour))
	assert.Equal(t, time.Hour, registry.GetDuration(ctx, "no.such.key", time.Hour))
}

func TestRegistry_MalformedValueFallsBack(t *testing.T) {
	repo := newFakeRepository(map[string]string{KeyMaximumSongNumber: "not-a-number"})
	registry := NewRegistry(repo, nil, testLogger())
	require.NoError(t, registry.Load(context.Background()))

	assert.Equal(t, DefaultMaximumSongNumber, registry.MaximumSongNumber(context.Background()))
}
