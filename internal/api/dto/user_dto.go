package dto

import (
	"time"

	"github.com/labtrack/labtrack-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	FullName *string     `json:"fullName"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account. The password hash is never
// serialized.
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FullName  *string     `json:"fullName"`
	Role      domain.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RegisterResponse is returned after creating an account.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
