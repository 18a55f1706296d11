// Package main is the entry point for the admin gateway. It loads
// configuration, connects the token store backends, wires the upstream
// CMS client to the session service, and starts the HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pressdeck/admin-gateway/internal/api"
	"github.com/pressdeck/admin-gateway/internal/api/middleware"
	"github.com/pressdeck/admin-gateway/internal/core/service"
	"github.com/pressdeck/admin-gateway/internal/infrastructure/cms"
	"github.com/pressdeck/admin-gateway/internal/infrastructure/config"
	"github.com/pressdeck/admin-gateway/internal/infrastructure/store"
	"github.com/pressdeck/admin-gateway/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("cms", cfg.APIBaseURL).
		Msg("starting admin gateway")

	// --- Token store: Redis primary, file cache secondary ---
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	rdb, err := store.ConnectRedis(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	tokenStore := store.New(log,
		store.NewRedisBackend(rdb),
		store.NewFileBackend(cfg.TokenCacheDir, cfg.SessionTTL, clockwork.NewRealClock()),
	)

	// --- Upstream client and session service ---
	client := cms.New(cfg.APIBaseURL, tokenStore, log)
	sessions := service.NewSessionService(tokenStore, client, client, log)

	// An upstream 401 anywhere terminates the session; the client only
	// signals, the session service decides.
	client.OnUnauthorized(sessions.HandleUnauthorized)

	cookies := middleware.NewCookies(cfg.SessionSecret, cfg.SessionTTL)

	e := api.NewRouter(api.Deps{
		Sessions:     sessions,
		CMS:          client,
		Cookies:      cookies,
		Redis:        rdb,
		Log:          log,
		AssetBaseURL: cfg.AssetBaseURL,
	})

	// --- Graceful shutdown ---
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced shutdown")
		}
	}()

	if err := e.Start(":" + cfg.Port); err != nil {
		// Echo returns http.ErrServerClosed on graceful shutdown.
		log.Info().Err(err).Msg("server stopped")
	}
}
