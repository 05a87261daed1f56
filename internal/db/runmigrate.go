package db

import (
	"os"

	"github.com/rs/zerolog"
)

// RunMigrations is a lightweight entry point for the -migrate-only flag.
// It respects the MIGRATIONS env var just like ConnectAndMigrate.
func RunMigrations(log zerolog.Logger, rawDSN string) error {
	dsn := NormalizeDSN(rawDSN)
	if dsn == "" {
		return nil
	}
	if os.Getenv("MIGRATIONS") == "" {
		log.Info().Msg("MIGRATIONS env not set; skipping sql migrations (AutoMigrate path used at app start)")
		return nil
	}
	log.Info().Msg("running explicit SQL migrations")
	return runSQLMigrations(dsn)
}
