package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/labtrack/labtrack-service/internal/config"
)

func TestMigrationFilesSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_more.sql", "001_init.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700); err != nil {
		t.Fatal(err)
	}

	got, err := migrationFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"001_init.sql", "002_more.sql"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}

	if _, err := migrationFiles(filepath.Join(dir, "missing")); err == nil {
		t.Error("missing dir should error")
	}
}

func TestRepoMigrationsPresent(t *testing.T) {
	got, err := migrationFiles(filepath.Join("..", "..", "migrations"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || got[0] != "001_init.sql" {
		t.Errorf("migrations = %v", got)
	}
}

func TestDisabledBackends(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	pg, err := NewPostgres(ctx, config.PostgresConfig{}, logger)
	if err != nil || pg != nil {
		t.Fatalf("NewPostgres without DSN = %v, %v", pg, err)
	}
	if err := pg.Ping(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("nil postgres ping = %v", err)
	}
	pg.Close()

	rdb := NewRedis(config.RedisConfig{}, logger)
	if rdb != nil {
		t.Fatal("NewRedis without addr should be nil")
	}
	if err := rdb.Ping(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("nil redis ping = %v", err)
	}
	if err := rdb.Publish(ctx, "c", nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("nil redis publish = %v", err)
	}
	rdb.Close()

	if err := RunMigrations(ctx, nil, "migrations", logger); err != nil {
		t.Errorf("migrations without pool = %v", err)
	}
}
