// Command api starts the records backend: session-authenticated CRUD over
// clients, bills, users and files, backed by MongoDB with sessions in Redis
// or in process memory.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/recordkeep/records-api/internal/api"
	"github.com/recordkeep/records-api/internal/core/ports"
	"github.com/recordkeep/records-api/internal/core/service"
	"github.com/recordkeep/records-api/internal/core/session"
	"github.com/recordkeep/records-api/internal/infrastructure/config"
	mongodb "github.com/recordkeep/records-api/internal/infrastructure/db/mongo"
	redisdb "github.com/recordkeep/records-api/internal/infrastructure/db/redis"
	"github.com/recordkeep/records-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	billRepo := mongodb.NewBillRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	fileStore, err := mongodb.NewFileStore(db)
	if err != nil {
		log.Fatal().Err(err).Msg("gridfs init failed")
	}

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := billRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("bill indexes failed")
	}

	var sessions ports.SessionStore
	if cfg.Redis.Sessions {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		sessions = redisdb.NewSessionStore(rdb, cfg.SessionTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions in redis")
	} else {
		memory := session.NewMemoryStore(cfg.SessionTTL, log)
		memory.StartSweeper(ctx, cfg.SweepInterval)
		sessions = memory
		log.Info().Dur("sweep_interval", cfg.SweepInterval).Msg("sessions in memory")
	}

	settingsService := service.NewSettingsService(settingsRepo, log)
	svc := api.Services{
		// The cookie token's absolute expiry caps how long a session can
		// slide; idle expiry itself is the session store's job.
		Auth:     service.NewAuthService(userRepo, sessions, cfg.SessionSecret, 24*time.Hour, log),
		Users:    service.NewUserService(userRepo, log),
		Clients:  service.NewClientService(clientRepo, log),
		Bills:    service.NewBillService(billRepo, clientRepo, fileStore, log),
		Files:    service.NewFileService(fileStore, settingsService, log),
		Settings: settingsService,
	}

	e := api.NewRouter(svc, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
