// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Flix HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load the CSV dataset into the in-memory catalogue.
//  4. Connect to Redis (optional).
//  5. Wire HTTP handlers.
//  6. Serve until SIGINT/SIGTERM, then shut down gracefully.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/flix/internal/api"
	"github.com/taibuivan/flix/internal/core/actor"
	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/core/movie"
	"github.com/taibuivan/flix/internal/platform/config"
	"github.com/taibuivan/flix/internal/platform/constants"
	"github.com/taibuivan/flix/internal/platform/dataset"
	"github.com/taibuivan/flix/internal/platform/middleware"
	redisstore "github.com/taibuivan/flix/internal/platform/redis"
	"github.com/taibuivan/flix/internal/platform/sec"
	"github.com/taibuivan/flix/internal/users/account"
	"github.com/taibuivan/flix/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log := rawLog.With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String(constants.FieldVersion, constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String(constants.FieldApp, constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("data_path", cfg.DataPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 3. Catalogue ──────────────────────────────────────────────────────
	repo := catalog.NewMemoryRepository()
	hasher := func(plainText string) (string, error) {
		return sec.HashPasswordWithCost(plainText, cfg.BcryptCost)
	}

	loadCtx, loadCancel := context.WithTimeout(ctx, constants.DatasetLoadTimeout)
	err = dataset.NewLoader(os.DirFS(cfg.DataPath), repo, hasher, log).Populate(loadCtx)
	loadCancel()
	must(log, err, "load dataset")

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var revocations auth.RevocationStore = auth.NewMemoryRevocationStore()
	var checkCache func(context.Context) error

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		revocations = auth.NewRedisRevocationStore(rdb)
		checkCache = func(context context.Context) error {
			return redisstore.Ping(context, rdb)
		}
	} else {
		log.Warn("redis_disabled", slog.String("reason", "REDIS_URL not set, token revocations are process-local"))
	}

	// ── 5. Auth Service ───────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	authService := auth.NewService(repo, revocations, tokens, auth.Options{
		BcryptCost: cfg.BcryptCost,
		Roles:      cfg,
	})

	// ── 6. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCatalog: func() error {
			if repo.GetNumberOfMovies() == 0 {
				return errors.New("catalogue is empty")
			}
			return nil
		},
		CheckCache: checkCache,
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)

	server := api.NewServer(cfg, log, api.Dependencies{
		Verifier:    authService,
		Limiter:     limiter,
		CatalogLock: &sync.RWMutex{},
	}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Movie:     movie.NewHandler(movie.NewService(repo)),
		Actor:     actor.NewHandler(actor.NewService(repo)),
		Account:   account.NewHandler(account.NewService(repo)),
	})

	// ── 8. Run & Graceful Shutdown ────────────────────────────────────────
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(server.ListenAndServe)

	group.Go(func() error {
		limiter.Cleanup(groupCtx, constants.RateLimitCleanupInterval, constants.RateLimitClientTTL)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
		return server.Shutdown(constants.ShutdownTimeout)
	})

	if err := group.Wait(); err != nil {
		log.Error("server_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
