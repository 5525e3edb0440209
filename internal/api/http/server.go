package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/labtrack/labtrack-service/internal/observability"
)

// ServerOptions configures the fiber application.
type ServerOptions struct {
	AppName        string
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	RequestTimeout time.Duration
}

// NewServer builds the fiber app with middlewares and routes registered.
func NewServer(opts ServerOptions, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
		// Params and body values outlive the request once they reach a
		// repository, so fiber must not hand out views of its pooled buffers.
		Immutable: true,
	})
	RegisterMiddlewares(app, opts.Logger, opts.Metrics, opts.RequestTimeout)
	RegisterRoutes(app, routes)
	return app
}
