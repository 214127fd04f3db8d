package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/tivra/storefront-gateway/internal/api"
	"github.com/tivra/storefront-gateway/internal/backend"
	"github.com/tivra/storefront-gateway/internal/core/ports"
	"github.com/tivra/storefront-gateway/internal/infrastructure/config"
	"github.com/tivra/storefront-gateway/internal/session"
	"github.com/tivra/storefront-gateway/pkg/logger"
)

// @title        Tivra Storefront Gateway API
// @version      1.0
// @description  Role-based storefront gateway for the Tivra agricultural-commodity marketplace.
// @BasePath     /
func main() {
	// Optional .env overlay for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	client, err := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Str("base_url", cfg.Backend.BaseURL).Msg("invalid backend base URL")
	}

	var sessions ports.SessionStore
	var rdb *redis.Client
	if cfg.Session.RedisAddr != "" {
		c, err := session.Connect(ctx, session.Config{
			Addr: cfg.Session.RedisAddr,
			DB:   cfg.Session.RedisDB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Session.RedisAddr).Msg("redis unavailable")
		}
		defer c.Close()
		sessions = session.NewRedisStore(c, cfg.Session.TTL)
		rdb = c
		log.Info().Str("addr", cfg.Session.RedisAddr).Msg("sessions backed by redis")
	} else {
		sessions = session.NewMemoryStore()
		log.Warn().Msg("REDIS_ADDR not set, sessions are in-memory and will not survive a restart")
	}

	e := api.NewRouter(api.Deps{
		Marketplace:  client,
		Sessions:     sessions,
		Redis:        rdb,
		CookieName:   cfg.Session.CookieName,
		SecureCookie: !cfg.Development(),
		SessionTTL:   cfg.Session.TTL,
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("storefront gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
