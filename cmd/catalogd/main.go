// Copyright (c) 2026 Melodee. All rights reserved.

// Command catalogd is the entry point for the Melodee catalog daemon.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Load the settings registry and start its invalidation watcher.
//  7. Wire the domain services and start the maintenance janitor.
//  8. Start the probe HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sphildreth/melodee-sub003/internal/api"
	"github.com/sphildreth/melodee-sub003/internal/catalog/album"
	"github.com/sphildreth/melodee-sub003/internal/catalog/artist"
	"github.com/sphildreth/melodee-sub003/internal/catalog/contributor"
	"github.com/sphildreth/melodee-sub003/internal/catalog/library"
	"github.com/sphildreth/melodee-sub003/internal/catalog/song"
	"github.com/sphildreth/melodee-sub003/internal/ops/radiostation"
	"github.com/sphildreth/melodee-sub003/internal/ops/scanhistory"
	"github.com/sphildreth/melodee-sub003/internal/platform/config"
	"github.com/sphildreth/melodee-sub003/internal/platform/constants"
	"github.com/sphildreth/melodee-sub003/internal/platform/migration"
	pgstore "github.com/sphildreth/melodee-sub003/internal/platform/postgres"
	redisstore "github.com/sphildreth/melodee-sub003/internal/platform/redis"
	"github.com/sphildreth/melodee-sub003/internal/settings"
	"github.com/sphildreth/melodee-sub003/internal/users/bookmark"
	"github.com/sphildreth/melodee-sub003/internal/users/interaction"
	"github.com/sphildreth/melodee-sub003/internal/users/playlist"
	"github.com/sphildreth/melodee-sub003/internal/users/playqueue"
	"github.com/sphildreth/melodee-sub003/internal/users/scrobble"
	"github.com/sphildreth/melodee-sub003/internal/users/share"
	"github.com/sphildreth/melodee-sub003/internal/users/user"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. A 30s deadline catches misconfiguration
	// quickly instead of hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.SkipMigrations {
		log.Info("migrations_skipped")
	} else {
		must(log, migration.RunUp(cfg.DatabaseURL, log), "run migrations")
	}

	// ── 6. Settings Registry ──────────────────────────────────────────────
	registry := settings.NewRegistry(settings.NewPostgresRepository(pool), rdb, log)
	must(log, registry.Load(startupCtx), "load settings registry")

	// watchCtx outlives startup; it is canceled on shutdown to stop the
	// invalidation subscriber.
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	go registry.Watch(watchCtx)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	// The daemon exposes no domain API; this is the service surface consumed
	// by the scanner and streaming processes sharing the database. Built as
	// one struct so wiring failures surface at compile time.
	services := buildServices(pool, registry, log)
	log.Info("services_wired")

	// ── 8. Maintenance ────────────────────────────────────────────────────
	go services.janitor(watchCtx, registry, log)

	// ── 9. Probe HTTP Server ──────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	server := api.NewServer(cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// Services is the wired domain surface. The daemon itself only runs the
// janitor over it; the scanner and streaming processes construct the same
// set against the shared database.
type Services struct {
	Libraries     *library.Service
	Artists       *artist.Service
	Albums        *album.Service
	Songs         *song.Service
	Contributors  *contributor.Service
	Users         *user.Service
	Interactions  *interaction.Service
	Bookmarks     *bookmark.Service
	Playlists     *playlist.Service
	PlayQueues    *playqueue.Service
	Scrobbles     *scrobble.Service
	Shares        *share.Service
	ScanHistory   *scanhistory.Service
	RadioStations *radiostation.Service
}

func buildServices(pool *pgxpool.Pool, registry *settings.Registry, log *slog.Logger) *Services {
	libraryService := library.NewService(library.NewPostgresRepository(pool), log)
	artistService := artist.NewService(artist.NewPostgresRepository(pool), registry, log)
	albumService := album.NewService(album.NewPostgresRepository(pool), registry, log)
	songService := song.NewService(song.NewPostgresRepository(pool), registry, log)
	userService := user.NewService(user.NewPostgresRepository(pool), log)
	interactionService := interaction.NewService(interaction.NewPostgresRepository(pool), userService, log)

	return &Services{
		Libraries:    libraryService,
		Artists:      artistService,
		Albums:       albumService,
		Songs:        songService,
		Contributors: contributor.NewService(contributor.NewPostgresRepository(pool), log),
		Users:        userService,
		Interactions: interactionService,
		Bookmarks:    bookmark.NewService(bookmark.NewPostgresRepository(pool), log),
		Playlists:    playlist.NewService(playlist.NewPostgresRepository(pool), log),
		PlayQueues:   playqueue.NewService(playqueue.NewPostgresRepository(pool), log),
		Scrobbles: scrobble.NewService(
			scrobble.NewPostgresRepository(pool),
			registry,
			songService,
			interactionService,
			scrobble.CatalogCounters{Songs: songService, Albums: albumService, Artists: artistService},
			log,
		),
		Shares:        share.NewService(share.NewPostgresRepository(pool), log),
		ScanHistory:   scanhistory.NewService(scanhistory.NewPostgresRepository(pool), libraryService, log),
		RadioStations: radiostation.NewService(radiostation.NewPostgresRepository(pool), log),
	}
}

// janitor runs the periodic housekeeping the daemon owns: sweeping expired
// shares and pruning old scan history. It stops when ctx is canceled.
func (s *Services) janitor(ctx context.Context, registry *settings.Registry, log *slog.Logger) {
	interval := registry.GetDuration(ctx, "maintenance.interval", time.Hour)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if swept, err := s.Shares.SweepExpired(ctx); err != nil {
				log.Error("share_sweep_failed", slog.Any("error", err))
			} else if swept > 0 {
				log.Info("shares_swept", slog.Int("count", swept))
			}

			retention := registry.GetInt(ctx, "maintenance.scanhistoryretentiondays", 180)
			if pruned, err := s.ScanHistory.Prune(ctx, retention); err != nil {
				log.Error("scan_history_prune_failed", slog.Any("error", err))
			} else if pruned > 0 {
				log.Info("scan_history_pruned", slog.Int("count", pruned))
			}
		}
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
