package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack-service/internal/api/http/handlers"
	"github.com/labtrack/labtrack-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Assets         *handlers.AssetsHandler
	Tickets        *handlers.TicketsHandler
	Insights       *handlers.InsightsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("LabTrack API is running")
	})
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")
	authn := cfg.AuthMiddleware.Handle

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", authn, auth.Allow(auth.ActionRegisterUser), cfg.Auth.Register)

	assets := api.Group("/assets", authn)
	assets.Get("/", auth.Allow(auth.ActionListAssets), cfg.Assets.List)
	assets.Post("/", auth.Allow(auth.ActionManageAssets), cfg.Assets.Create)
	assets.Put("/:id", auth.Allow(auth.ActionManageAssets), cfg.Assets.Update)
	assets.Delete("/:id", auth.Allow(auth.ActionManageAssets), cfg.Assets.Delete)

	tickets := api.Group("/tickets", authn)
	tickets.Post("/", auth.Allow(auth.ActionCreateTicket), cfg.Tickets.CreateTicket)
	tickets.Get("/", auth.Allow(auth.ActionListTickets), cfg.Tickets.ListTickets)
	tickets.Put("/:id/status", auth.Allow(auth.ActionUpdateTicketStatus), cfg.Tickets.UpdateStatus)
	tickets.Put("/:id/assign", auth.Allow(auth.ActionAssignTicket), cfg.Tickets.Assign)
	tickets.Post("/:id/comments", auth.Allow(auth.ActionAddComment), cfg.Tickets.AddComment)

	users := api.Group("/users", authn, auth.Allow(auth.ActionManageUsers))
	users.Get("/", cfg.Users.List)
	users.Patch("/:id/toggle", cfg.Users.Toggle)
	users.Delete("/:id", cfg.Users.Delete)

	api.Post("/chatbot/query", authn, auth.Allow(auth.ActionChatbotQuery), cfg.Insights.ChatbotQuery)
	api.Get("/dashboard", authn, auth.Allow(auth.ActionViewDashboard), cfg.Insights.Dashboard)
}
