// Command seed-admin creates the initial administrator account in Postgres.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/labtrack/labtrack-service/internal/config"
	"github.com/labtrack/labtrack-service/internal/observability"
	"github.com/labtrack/labtrack-service/internal/persistence"
	"github.com/labtrack/labtrack-service/internal/repository"
	"github.com/labtrack/labtrack-service/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed-admin: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	email := pflag.String("email", cfg.Bootstrap.AdminEmail, "administrator email")
	password := pflag.String("password", cfg.Bootstrap.AdminPassword, "administrator password")
	fullName := pflag.String("full-name", cfg.Bootstrap.AdminName, "administrator display name")
	pflag.Parse()

	if *password == "" {
		return errors.New("--password or BOOTSTRAP_ADMIN_PASSWORD is required")
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("POSTGRES_DSN is required")
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Pool, cfg.Postgres.MigrationsDir, logger); err != nil {
			return err
		}
	}

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo: repository.NewUserRepository(pg.Pool),
	})
	created, err := authService.EnsureAdmin(ctx, *email, *password, *fullName)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if created {
		logger.Info("admin created", zap.String("email", *email))
	} else {
		logger.Info("admin already exists", zap.String("email", *email))
	}
	return nil
}
