package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
	TicketStatusCancelled  TicketStatus = "CANCELLED"
)

// Valid reports whether s is a known ticket status. Any valid status may
// follow any other.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed, TicketStatusCancelled:
		return true
	}
	return false
}

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Ticket is a maintenance request raised against an asset.
type Ticket struct {
	ID           string
	Title        string
	Description  string
	AssetID      string
	Status       TicketStatus
	Priority     TicketPriority
	ReportedByID string
	AssignedToID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Comment is an immutable note on a ticket.
type Comment struct {
	ID        string
	Content   string
	TicketID  string
	UserID    string
	CreatedAt time.Time
}

// CommentView is a comment with its author loaded.
type CommentView struct {
	Comment
	Author *User
}

// TicketView is a ticket with its relations loaded.
type TicketView struct {
	Ticket
	Asset      *Asset
	ReportedBy *User
	AssignedTo *User
	Comments   []CommentView
}
