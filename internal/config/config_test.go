package config

import (
	"reflect"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "APP_ENV", "LOG_LEVEL", "SHUTDOWN_TIMEOUT_SECONDS", "CORS_ORIGINS",
		"SPLASH_DELAY_MS", "THANK_YOU_DELAY_MS", "CATALOG_PAGE_SIZE", "CATALOG_SEED", "CATALOG_FILE", "DB_DSN", "AMQP_URL", "AMQP_QUEUE"} {
		t.Setenv(key, "")
	}
	cfg := FromEnv()

	if cfg.HTTPAddr != ":8080" || cfg.LogLevel != "info" || !cfg.IsDevelopment() {
		t.Fatalf("unexpected server defaults %+v", cfg)
	}
	if cfg.SplashDelay != 2*time.Second || cfg.ThankYouDelay != 10*time.Second {
		t.Fatalf("unexpected delays %s %s", cfg.SplashDelay, cfg.ThankYouDelay)
	}
	if cfg.PageSize != 12 || cfg.CatalogSeed != 0 || cfg.CatalogFile != "" {
		t.Fatalf("unexpected catalog defaults %d %d", cfg.PageSize, cfg.CatalogSeed)
	}
	if cfg.DBConnString != "" || cfg.AMQPURL != "" || cfg.AMQPQueue != "pos.sales" {
		t.Fatalf("unexpected journal defaults %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SPLASH_DELAY_MS", "500")
	t.Setenv("THANK_YOU_DELAY_MS", "not-a-number")
	t.Setenv("CATALOG_PAGE_SIZE", "24")
	t.Setenv("CATALOG_SEED", "42")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg := FromEnv()

	if cfg.IsDevelopment() {
		t.Fatalf("expected production")
	}
	if cfg.SplashDelay != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %s", cfg.SplashDelay)
	}
	if cfg.ThankYouDelay != 10*time.Second {
		t.Fatalf("invalid value should fall back, got %s", cfg.ThankYouDelay)
	}
	if cfg.PageSize != 24 || cfg.CatalogSeed != 42 {
		t.Fatalf("unexpected catalog config %d %d", cfg.PageSize, cfg.CatalogSeed)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}
