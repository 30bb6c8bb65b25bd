package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/techvantage/edu-platform/internal/api"
	"github.com/techvantage/edu-platform/internal/infrastructure/ai"
	mongodb "github.com/techvantage/edu-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/techvantage/edu-platform/internal/infrastructure/db/redis"
	httpserver "github.com/techvantage/edu-platform/internal/infrastructure/http"
	"github.com/techvantage/edu-platform/internal/infrastructure/queue"
	"github.com/techvantage/edu-platform/internal/pkg/config"
	"github.com/techvantage/edu-platform/pkg/logger"
)

// @title        Edu Platform API
// @version      1.0
// @description  Educational platform backend: accounts, institutions, students, scores, and AI-assisted content generation.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewStudentRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("student index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Audit trail workers ---
	dispatcher := queue.NewAuditDispatcher(cfg.AuditWorkers, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	// --- Generation backend ---
	llm := ai.NewClient(ai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})

	// --- HTTP ---
	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	e := api.NewRouter(db, rdb, llm, dispatcher, cfg.JWTSecret, tokenTTL, log)

	srv := httpserver.NewServer(e, cfg.Port, log)
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}

	log.Info().Msg("shutdown complete")
}
