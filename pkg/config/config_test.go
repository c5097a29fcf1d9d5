package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to be dev, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.Persistence.Driver != PersistenceDriverSQLite {
		t.Fatalf("expected sqlite driver by default, got %q", cfg.Persistence.Driver)
	}
	if cfg.Persistence.CartKey != "cart-items-v1" || cfg.Persistence.WishlistKey != "wishlist-items-v1" {
		t.Fatalf("unexpected record keys %q %q", cfg.Persistence.CartKey, cfg.Persistence.WishlistKey)
	}
	if !cfg.Persistence.AutoMigrate || cfg.Persistence.WriteTimeout != 2*time.Second {
		t.Fatalf("unexpected persistence defaults %+v", cfg.Persistence)
	}
	if got := cfg.Catalog.Timeout; got != 5*time.Second {
		t.Fatalf("expected catalog timeout 5s, got %v", got)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvPersistenceDriver, "localstorage")

	if _, err := Load(); err == nil {
		t.Fatal("expected unsupported driver error")
	}
}

func TestLoad_NormalizesDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvPersistenceDriver, " Memory ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Persistence.Driver != PersistenceDriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.Persistence.Driver)
	}
}

func TestLoad_RejectsSharedRecordKey(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCartKey, "state")
	t.Setenv(EnvWishlistKey, "state")

	if _, err := Load(); err == nil {
		t.Fatal("expected cart and wishlist keys to be required distinct")
	}
}

func TestLoad_RedisDriverNeedsAddress(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvPersistenceDriver, PersistenceDriverRedis)

	if _, err := Load(); err == nil {
		t.Fatal("expected redis driver without url to fail")
	}

	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	if _, err := Load(); err != nil {
		t.Fatalf("unexpected error with redis url: %v", err)
	}
}

func TestLoad_PostgresBuildsDSNFromParts(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvPersistenceDriver, PersistenceDriverPostgres)
	t.Setenv(EnvDBHost, "db.internal")
	t.Setenv(EnvDBUser, "shop")
	t.Setenv(EnvDBName, "storefront")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "postgres://shop@db.internal:5432/storefront?sslmode=disable"
	if cfg.DB.DSN != want {
		t.Fatalf("expected dsn %q, got %q", want, cfg.DB.DSN)
	}
}

func TestLoad_PostgresMissingParts(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvPersistenceDriver, PersistenceDriverPostgres)
	t.Setenv(EnvDBHost, "db.internal")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing db parts error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "dev")
	for _, key := range []string{EnvPersistenceDriver, EnvCartKey, EnvWishlistKey, EnvDBDSN, EnvDBHost, EnvDBUser, EnvDBName, EnvRedisURL, EnvRedisAddr} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
