package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/assetdesk/inventory-api/internal/api"
	"github.com/assetdesk/inventory-api/internal/core/service"
	mongodb "github.com/assetdesk/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/assetdesk/inventory-api/internal/infrastructure/db/redis"
	"github.com/assetdesk/inventory-api/internal/pkg/config"
	"github.com/assetdesk/inventory-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// A missing signing secret is a configuration error: fail startup, do
	// not serve requests.
	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewAssetRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("asset indexes failed")
	}

	// The report cache is optional: without Redis, reports read straight
	// from the store on every request.
	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, report caching disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, tokens, cfg.ReportCacheTTL, cfg.Env, log)
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
