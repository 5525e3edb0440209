package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack-service/internal/api/dto"
	"github.com/labtrack/labtrack-service/internal/service"
)

// TicketsHandler manages maintenance tickets.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.CreateTicketRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ticket, err := h.service.CreateTicket(c.UserContext(), principal, service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		AssetID:     req.AssetID,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ticketResponse(ticket))
}

// ListTickets GET /api/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	views, err := h.service.ListTickets(c.UserContext(), principal)
	if err != nil {
		return err
	}
	out := make([]dto.TicketDetailResponse, 0, len(views))
	for i := range views {
		out = append(out, ticketDetail(&views[i]))
	}
	return c.JSON(out)
}

// UpdateStatus PUT /api/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.service.UpdateStatus(c.UserContext(), principal, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(ticketResponse(ticket))
}

// Assign PUT /api/tickets/:id/assign.
func (h *TicketsHandler) Assign(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.AssignTicketRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.service.AssignTicket(c.UserContext(), principal, c.Params("id"), req.AssignedToID)
	if err != nil {
		return err
	}
	return c.JSON(ticketResponse(ticket))
}

// AddComment POST /api/tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	comment, err := h.service.AddComment(c.UserContext(), principal, c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(commentResponse(comment, nil))
}
