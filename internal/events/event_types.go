package events

import (
	"time"

	"github.com/labtrack/labtrack-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketCommentAdded  EventType = "ticket_comment_added"
	EventAssetCreated        EventType = "asset_created"
	EventAssetDeleted        EventType = "asset_deleted"
)

// Actor identifies who triggered an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id"`
	Actor      Actor       `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	AssetID  string                `json:"asset_id"`
	Priority domain.TicketPriority `json:"priority"`
	Title    string                `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	PreviousAssigneeID *string `json:"previous_assignee_id,omitempty"`
	AssigneeID         *string `json:"assignee_id,omitempty"`
}

// TicketCommentAddedPayload payload.
type TicketCommentAddedPayload struct {
	CommentID   string `json:"comment_id"`
	BodyPreview string `json:"body_preview"`
}

// AssetPayload payload for asset lifecycle events.
type AssetPayload struct {
	AssetCode string             `json:"asset_code"`
	Status    domain.AssetStatus `json:"status,omitempty"`
}
