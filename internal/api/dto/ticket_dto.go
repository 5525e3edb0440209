package dto

import (
	"time"

	"github.com/labtrack/labtrack-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	AssetID     string                `json:"assetId"`
	Priority    domain.TicketPriority `json:"priority"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// AssignTicketRequest payload. An empty id clears the assignee.
type AssignTicketRequest struct {
	AssignedToID string `json:"assignedToId"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// TicketResponse is a plain ticket row.
type TicketResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	AssetID      string                `json:"assetId"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	ReportedByID string                `json:"reportedById"`
	AssignedToID *string               `json:"assignedToId"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// TicketDetailResponse is a ticket with its relations loaded.
type TicketDetailResponse struct {
	TicketResponse
	Asset      *AssetResponse    `json:"asset"`
	ReportedBy *UserResponse     `json:"reportedBy"`
	AssignedTo *UserResponse     `json:"assignedTo"`
	Comments   []CommentResponse `json:"comments"`
}

// CommentResponse view. User is set when the author is loaded.
type CommentResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	TicketID  string        `json:"ticketId"`
	UserID    string        `json:"userId"`
	CreatedAt time.Time     `json:"createdAt"`
	User      *UserResponse `json:"user,omitempty"`
}
