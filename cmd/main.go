package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram/cmd/config"
	migration "foodgram/cmd/database/migrate"
	"foodgram/internal/utils"
	"foodgram/internal/utils/logger"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	utils.LoadConfig()
	logger.Init(logger.Config{
		Level:  utils.GetConfig("LOG_LEVEL"),
		Format: utils.GetConfig("LOG_FORMAT"),
	})

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	if *migrate || *migrateOnly {
		if err := migration.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("database migration failed")
		}
		if *migrateOnly {
			return
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		logger.Fatal().Err(err).Msg("app setup failed")
	}

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := app.Listen(addr); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("server exited")
}
