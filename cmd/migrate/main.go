package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/pritam-ray/mitthuug-sub001/internal/config"
	"github.com/pritam-ray/mitthuug-sub001/internal/schema"
)

// Applies the schema contract to the configured Postgres database.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "migrate").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := schema.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect")
	}

	if err := schema.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}
	logger.Info().Msg("schema migrated")
}
