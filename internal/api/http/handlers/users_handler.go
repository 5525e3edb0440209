package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack-service/internal/api/dto"
	"github.com/labtrack/labtrack-service/internal/service"
)

// UsersHandler exposes account administration.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return c.JSON(out)
}

// Toggle handles PATCH /api/users/:id/toggle.
func (h *UsersHandler) Toggle(c *fiber.Ctx) error {
	user, err := h.users.Toggle(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(userResponse(user))
}

// Delete handles DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}
