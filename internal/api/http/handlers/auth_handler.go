package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack-service/internal/api/dto"
	"github.com/labtrack/labtrack-service/internal/service"
)

// AuthHandler exposes login and account registration.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		FullName: req.FullName,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "User registered successfully",
		User:    userResponse(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token, ExpiresAt: exp, User: userResponse(user)})
}
