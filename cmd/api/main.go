package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"mechgenz/backend/internal/catalog"
	"mechgenz/backend/internal/config"
	"mechgenz/backend/internal/database"
	"mechgenz/backend/internal/handlers"
	"mechgenz/backend/internal/jobs"
	"mechgenz/backend/internal/log"
	"mechgenz/backend/internal/mail"
	"mechgenz/backend/internal/repository"
	"mechgenz/backend/internal/server"
	"mechgenz/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	client, err := database.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect mongodb")
	}
	db := client.Database(cfg.Mongo.Database)

	disk := storage.NewDisk(cfg.Storage)
	if err := disk.EnsureDirs(); err != nil {
		logger.Fatal().Err(err).Msg("failed to create storage dirs")
	}

	admins := repository.NewAdminRepository(db)
	if err := admins.EnsureDefault(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Warn().Err(err).Msg("admin initialization failed")
	}

	mailer := mail.New(cfg.Mail, disk, logger)
	if !mailer.Enabled() {
		logger.Warn().Msg("resend api key not set, email delivery disabled")
	}

	handlerSet := handlers.NewHandlerSet(logger, db, cfg, catalog.Default(), disk, mailer)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	refs := repository.NewFileReferences(
		repository.NewOverrideRepository(db),
		repository.NewSubmissionRepository(db),
	)
	sweeper := jobs.NewSweeper(refs, disk, logger)
	if err := sweeper.Start(); err != nil {
		logger.Error().Err(err).Msg("sweeper start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, sweeper, client)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, sweeper *jobs.Sweeper, client *mongo.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	select {
	case <-sweeper.Stop().Done():
	case <-time.After(5 * time.Second):
		logger.Warn().Msg("sweeper did not stop in time")
	}

	if err := client.Disconnect(context.Background()); err != nil {
		logger.Error().Err(err).Msg("mongo disconnect error")
	}

	logger.Info().Msg("server exited cleanly")
}
