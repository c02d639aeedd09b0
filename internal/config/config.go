package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	Env             string
	LogLevel        string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	SplashDelay   time.Duration
	ThankYouDelay time.Duration
	PageSize      int
	CatalogSeed   int64
	CatalogFile   string

	DBConnString string
	AMQPURL      string
	AMQPQueue    string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		Env:             envOrDefault("APP_ENV", "development"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"*"}),
		SplashDelay:     envMillis("SPLASH_DELAY_MS", 2*time.Second),
		ThankYouDelay:   envMillis("THANK_YOU_DELAY_MS", 10*time.Second),
		PageSize:        envInt("CATALOG_PAGE_SIZE", 12),
		CatalogSeed:     envInt64("CATALOG_SEED", 0),
		CatalogFile:     envOrDefault("CATALOG_FILE", ""),
		DBConnString:    envOrDefault("DB_DSN", ""),
		AMQPURL:         envOrDefault("AMQP_URL", ""),
		AMQPQueue:       envOrDefault("AMQP_QUEUE", "pos.sales"),
	}
}

// IsDevelopment reports whether logs should be written for humans.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envMillis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		ms, err := strconv.Atoi(v)
		if err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
