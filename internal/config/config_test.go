package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "")
	t.Setenv("AUTH_BCRYPT_COST", "")
	t.Setenv("REDIS_EVENTS_CHANNEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.App.Port != "5000" {
		t.Errorf("App.Port = %q, want 5000", cfg.App.Port)
	}
	if cfg.Auth.AccessTokenTTL() != time.Hour {
		t.Errorf("AccessTokenTTL = %v, want 1h", cfg.Auth.AccessTokenTTL())
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.Redis.EventsChannel != "labtrack:events" {
		t.Errorf("EventsChannel = %q", cfg.Redis.EventsChannel)
	}
}

func TestLoadRedisCanBeDisabled(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("REDIS_ADDR", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Redis.Addr = %q, want empty", cfg.Redis.Addr)
	}
}

func TestLoadRejectsDevSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for default secret in production")
	}
}

func TestGetEnvAsIntFallback(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 7},
		{"number", "42", 42},
		{"garbage", "abc", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LABTRACK_TEST_INT", tt.value)
			if got := getEnvAsInt("LABTRACK_TEST_INT", 7); got != tt.want {
				t.Errorf("getEnvAsInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequestTimeout(t *testing.T) {
	if got := (AppConfig{RequestTimeoutSeconds: 0}).RequestTimeout(); got != 0 {
		t.Errorf("RequestTimeout = %v, want 0", got)
	}
	if got := (AppConfig{RequestTimeoutSeconds: 5}).RequestTimeout(); got != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", got)
	}
}
