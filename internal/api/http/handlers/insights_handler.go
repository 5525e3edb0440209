package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack-service/internal/api/dto"
	"github.com/labtrack/labtrack-service/internal/service"
)

// InsightsHandler serves the chatbot and the dashboard.
type InsightsHandler struct {
	chatbot   *service.ChatbotService
	dashboard *service.DashboardService
}

// NewInsightsHandler constructs handler.
func NewInsightsHandler(chatbot *service.ChatbotService, dashboard *service.DashboardService) *InsightsHandler {
	return &InsightsHandler{chatbot: chatbot, dashboard: dashboard}
}

// ChatbotQuery POST /api/chatbot/query.
func (h *InsightsHandler) ChatbotQuery(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.ChatbotRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.chatbot.Query(c.UserContext(), principal, req.Query)
	if err != nil {
		return err
	}

	resp := dto.ChatbotResponse{Intent: string(result.Intent), Message: result.Message}
	switch {
	case result.Count != nil:
		resp.Data = dto.CountResponse{Count: *result.Count}
	case result.Intent == service.IntentAssetsUnderMaintenance:
		resp.Data = assetResponses(result.Assets)
	case result.Intent != service.IntentUnknown:
		resp.Data = ticketResponses(result.Tickets)
	}
	return c.JSON(resp)
}

// Dashboard GET /api/dashboard.
func (h *InsightsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.DashboardResponse{
		Stats: dto.DashboardTotals{
			Assets:      stats.TotalAssets,
			OpenTickets: stats.OpenTickets,
			InProgress:  stats.InProgressTickets,
		},
		TicketChart: statusCounts(stats.TicketsByStatus),
		AssetChart:  statusCounts(stats.AssetsByStatus),
	})
}
