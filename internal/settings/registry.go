package settings

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sphildreth/melodee-sub003/internal/platform/constants"
	"github.com/sphildreth/melodee-sub003/internal/platform/validate"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
	"github.com/sphildreth/melodee-sub003/pkg/convert"
)

// Registry is the process-wide configuration service.
//
// # Lifecycle
//
// Load once at startup, read from the in-memory snapshot thereafter, and
// invalidate on every admin write. Writes also publish on a Redis channel so
// other processes holding their own snapshot reload too (invalidate-on-write;
// readers between the write and the reload may see the old value).
//
// Absence of a key is never an error: Get returns the caller's default.
type Registry struct {
	repo   Repository
	redis  *goredis.Client
	logger *slog.Logger

	mu       sync.RWMutex
	snapshot map[string]string
}

func NewRegistry(repo Repository, redis *goredis.Client, logger *slog.Logger) *Registry {
	return &Registry{
		repo:     repo,
		redis:    redis,
		logger:   logger,
		snapshot: map[string]string{},
	}
}

// Load replaces the snapshot with the full current table contents.
func (registry *Registry) Load(context context.Context) error {
	rows, err := registry.repo.ListSettings(context)
	if err != nil {
		return err
	}

	fresh := make(map[string]string, len(rows))
	for _, s := range rows {
		fresh[s.Key] = s.Value
	}

	registry.mu.Lock()
	registry.snapshot = fresh
	registry.mu.Unlock()

	registry.logger.Info("settings_loaded", slog.Int("count", len(fresh)))
	return nil
}

// normalizeKey folds a key to its stored form. Keys are case-insensitive on
// both the read and write paths; the snapshot and the table hold lowercase.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Get returns the stored value for key, or def when the key is absent.
// Key lookup is case-insensitive, so the camelCase key forms callers use
// resolve the same rows the lowercase seeds created.
func (registry *Registry) Get(_ context.Context, key, def string) string {
	registry.mu.RLock()
	value, ok := registry.snapshot[normalizeKey(key)]
	registry.mu.RUnlock()

	if !ok {
		return def
	}
	return value
}

// GetInt interprets the stored value as an integer, falling back to def when
// the key is absent or unparseable.
func (registry *Registry) GetInt(context context.Context, key string, def int) int {
	return convert.ToIntD(registry.Get(context, key, ""), def)
}

// GetBool interprets the stored value as a boolean, falling back to def.
func (registry *Registry) GetBool(context context.Context, key string, def bool) bool {
	return convert.ToBoolD(registry.Get(context, key, ""), def)
}

// GetDuration interprets the stored value in [time.ParseDuration] syntax,
// falling back to def when the key is absent or unparseable.
func (registry *Registry) GetDuration(context context.Context, key string, def time.Duration) time.Duration {
	raw := registry.Get(context, key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}

// Set upserts a key and invalidates every snapshot: this one synchronously,
// remote ones via the Redis change channel.
func (registry *Registry) Set(context context.Context, key, value string, category *int) error {
	validator := &validate.Validator{}
	validator.Required(FieldKey, key).MaxLen(FieldKey, key, constants.MaxGeneralInputLength)
	validator.MaxLen(FieldValue, value, constants.MaxTextLength)
	if err := validator.Err(); err != nil {
		return err
	}
	key = normalizeKey(key)

	s := &Setting{Key: key, Value: value, Category: category, APIKey: apikey.New()}
	if err := registry.repo.UpsertSetting(context, s); err != nil {
		return err
	}

	registry.mu.Lock()
	registry.snapshot[key] = value
	registry.mu.Unlock()

	registry.publishChange(context, key)
	registry.logger.Info("setting_written", slog.String("key", key))
	return nil
}

// Delete removes a key; subsequent reads fall back to caller defaults.
func (registry *Registry) Delete(context context.Context, key string) error {
	key = normalizeKey(key)
	if err := registry.repo.DeleteSetting(context, key); err != nil {
		return err
	}

	registry.mu.Lock()
	delete(registry.snapshot, key)
	registry.mu.Unlock()

	registry.publishChange(context, key)
	registry.logger.Info("setting_deleted", slog.String("key", key))
	return nil
}

// List returns the raw table rows, for admin surfaces.
func (registry *Registry) List(context context.Context) ([]*Setting, error) {
	return registry.repo.ListSettings(context)
}

func (registry *Registry) publishChange(context context.Context, key string) {
	if registry.redis == nil {
		return
	}

	if err := registry.redis.Incr(context, constants.RedisKeySettingsVersion).Err(); err != nil {
		registry.logger.Warn("settings_version_bump_failed", slog.Any("error", err))
	}
	if err := registry.redis.Publish(context, constants.RedisChannelSettingsChanged, key).Err(); err != nil {
		registry.logger.Warn("settings_change_publish_failed", slog.Any("error", err))
	}
}

// Watch reloads the snapshot whenever another process publishes a change.
// It blocks until ctx is canceled and is meant to run in its own goroutine.
func (registry *Registry) Watch(ctx context.Context) {
	if registry.redis == nil {
		return
	}

	sub := registry.redis.Subscribe(ctx, constants.RedisChannelSettingsChanged)
	defer sub.Close()

	channel := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := registry.Load(ctx); err != nil {
				registry.logger.Error("settings_reload_failed",
					slog.String("key", msg.Payload), slog.Any("error", err))
			}
		}
	}
}

// # Typed accessors for registry-declared bounds
//
// These satisfy the catalog services' bounds interfaces so validation limits
// stay admin-tunable without redeploys.

func (registry *Registry) IgnoredArticles(context context.Context) []string {
	return convert.ToStrings(registry.Get(context, KeyIgnoredArticles, DefaultIgnoredArticles))
}

func (registry *Registry) MinimumAlbumYear(context context.Context) int {
	return registry.GetInt(context, KeyMinimumAlbumYear, DefaultMinimumAlbumYear)
}

func (registry *Registry) MaximumAlbumYear(context context.Context) int {
	return registry.GetInt(context, KeyMaximumAlbumYear, DefaultMaximumAlbumYear)
}

func (registry *Registry) MaximumDiscNumber(context context.Context) int {
	return registry.GetInt(context, KeyMaximumDiscNumber, DefaultMaximumDiscNumber)
}

func (registry *Registry) MaximumSongNumber(context context.Context) int {
	return registry.GetInt(context, KeyMaximumSongNumber, DefaultMaximumSongNumber)
}

func (registry *Registry) MinimumSongDuration(context context.Context) int {
	return registry.GetInt(context, KeyMinimumSongDuration, DefaultMinimumSongDuration)
}

func (registry *Registry) ScrobblingEnabled(context context.Context) bool {
	return registry.GetBool(context, KeyScrobblingEnabled, true)
}

func (registry *Registry) IsReadOnly(context context.Context) bool {
	return registry.GetBool(context, KeySystemIsReadOnly, false)
}
