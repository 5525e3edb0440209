package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/labtrack/labtrack-service/internal/api/http"
	"github.com/labtrack/labtrack-service/internal/api/http/handlers"
	"github.com/labtrack/labtrack-service/internal/auth"
	"github.com/labtrack/labtrack-service/internal/config"
	"github.com/labtrack/labtrack-service/internal/events"
	"github.com/labtrack/labtrack-service/internal/observability"
	"github.com/labtrack/labtrack-service/internal/persistence"
	"github.com/labtrack/labtrack-service/internal/repository"
	"github.com/labtrack/labtrack-service/internal/repository/memory"
	"github.com/labtrack/labtrack-service/internal/service"
	"github.com/labtrack/labtrack-service/internal/worker"
)

type repositories struct {
	users    repository.UserRepository
	assets   repository.AssetRepository
	tickets  repository.TicketRepository
	comments repository.CommentRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	var repos repositories
	if pg != nil {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.Pool, cfg.Postgres.MigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		repos = repositories{
			users:    repository.NewUserRepository(pg.Pool),
			assets:   repository.NewAssetRepository(pg.Pool),
			tickets:  repository.NewTicketRepository(pg.Pool),
			comments: repository.NewCommentRepository(pg.Pool),
		}
	} else {
		store := memory.New()
		repos = repositories{
			users:    store.Users(),
			assets:   store.Assets(),
			tickets:  store.Tickets(),
			comments: store.Comments(),
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	var relay *worker.NotificationRelay
	var publisher service.EventPublisher
	if redis != nil {
		relay = worker.NewNotificationRelay(redis, 0, logger)
		relay.Start()
		publisher = relay
	}
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, publisher, cfg.Redis.EventsChannel, logger))

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{UserRepo: repos.users})
	userService := service.NewUserService(repos.users)
	assetService := service.NewAssetService(repos.assets, dispatcher)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:  repos.tickets,
		CommentRepo: repos.comments,
		AssetRepo:   repos.assets,
		UserRepo:    repos.users,
		Dispatcher:  dispatcher,
	})
	chatbotService := service.NewChatbotService(ticketService, assetService)
	dashboardService := service.NewDashboardService(repos.assets, repos.tickets)

	if cfg.Bootstrap.AdminPassword != "" {
		created, err := authService.EnsureAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword, cfg.Bootstrap.AdminName)
		if err != nil {
			logger.Fatal("failed to seed admin", zap.Error(err))
		}
		logger.Info("bootstrap admin", zap.String("email", cfg.Bootstrap.AdminEmail), zap.Bool("created", created))
	}

	metrics := observability.NewMetrics()
	app := httptransport.NewServer(httptransport.ServerOptions{
		AppName:        cfg.App.Name,
		Logger:         logger,
		Metrics:        metrics,
		RequestTimeout: cfg.App.RequestTimeout(),
	}, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Assets:         handlers.NewAssetsHandler(assetService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Insights:       handlers.NewInsightsHandler(chatbotService, dashboardService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.Bool("postgres", pg != nil), zap.Bool("redis", redis != nil))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	if relay != nil {
		if err := relay.Stop(shutdownCtx); err != nil {
			logger.Warn("notification relay shutdown", zap.Error(err))
		}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
