package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/storeline/backoffice/internal/config"
	"github.com/storeline/backoffice/internal/db"
	"github.com/storeline/backoffice/internal/server"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()
	logger := newLogger(cfg.Env)
	log.Logger = logger

	if *migrateOnlyFlag {
		if err := db.RunMigrations(logger, cfg.DatabaseDSN); err != nil {
			logger.Fatal().Err(err).Msg("migrate-only failed")
		}
		logger.Info().Msg("migrations completed; exiting as requested")
		return
	}

	dbConn, err := db.ConnectAndMigrate(logger, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	logger.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting server")

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(dbConn, logger)}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("error during shutdown")
	}
	logger.Info().Msg("server gracefully stopped")
}
