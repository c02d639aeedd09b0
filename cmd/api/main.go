package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"silzey-pos/internal/catalog"
	"silzey-pos/internal/config"
	"silzey-pos/internal/db"
	"silzey-pos/internal/httpserver"
	"silzey-pos/internal/importer"
	"silzey-pos/internal/journal"
	"silzey-pos/internal/migrate"
	salerepo "silzey-pos/internal/repository/sale"
	"silzey-pos/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger := newLogger(cfg)

	ctx := context.Background()
	recorders := journal.Multi{journal.NewLog(logger)}

	var dbpool *pgxpool.Pool
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString, 4)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect to db")
		}
		dbpool = pool
		defer pool.Close()

		if err := migrate.Apply(ctx, pool, logger); err != nil {
			logger.Fatal().Err(err).Msg("apply migrations")
		}
		recorders = append(recorders, journal.NewPostgres(salerepo.NewPostgres(pool)))
		logger.Info().Msg("journaling sales to postgres")
	}

	if cfg.AMQPURL != "" {
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect to rabbitmq")
		}
		defer conn.Close()
		ch, err := conn.Channel()
		if err != nil {
			logger.Fatal().Err(err).Msg("open rabbitmq channel")
		}
		defer ch.Close()
		publisher, err := journal.NewAMQP(ch, cfg.AMQPQueue)
		if err != nil {
			logger.Fatal().Err(err).Msg("init sale publisher")
		}
		recorders = append(recorders, publisher)
		logger.Info().Str("queue", cfg.AMQPQueue).Msg("publishing sales to rabbitmq")
	}

	register := session.NewRuntime(session.Options{
		Generator:     catalogGenerator(cfg, logger),
		PageSize:      cfg.PageSize,
		SplashDelay:   cfg.SplashDelay,
		ThankYouDelay: cfg.ThankYouDelay,
		Recorder:      recorders,
		Logger:        logger.With().Str("component", "session").Logger(),
	})

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Register:    register,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
	register.Close()
}

func catalogGenerator(cfg config.Config, logger zerolog.Logger) catalog.Generator {
	if cfg.CatalogFile == "" {
		return catalog.NewSource(cfg.CatalogSeed)
	}
	f, err := os.Open(cfg.CatalogFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("open catalog file")
	}
	defer f.Close()
	menu, err := importer.Load(f)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("load catalog file")
	}
	logger.Info().Str("file", cfg.CatalogFile).Interface("counts", menu.Counts()).Msg("catalog loaded from menu")
	return menu
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DurationFieldUnit = time.Millisecond

	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Str("service", "pos-api").Logger()
}
