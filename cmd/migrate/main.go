package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"silzey-pos/internal/config"
	"silzey-pos/internal/db"
	"silzey-pos/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("cmd", "migrate").Logger()

	if cfg.DBConnString == "" {
		logger.Fatal().Msg("DB_DSN is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, 1)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool, logger); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	logger.Info().Msg("migrations applied")
}
