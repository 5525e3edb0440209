package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/labtrack/labtrack-service/internal/domain"
	apperrors "github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

// Intent is the resolved category of a chatbot query.
type Intent string

const (
	IntentOpenTickets            Intent = "OPEN_TICKETS"
	IntentHighPriorityTickets    Intent = "HIGH_PRIORITY_TICKETS"
	IntentMyAssignedTickets      Intent = "MY_ASSIGNED_TICKETS"
	IntentAssetsUnderMaintenance Intent = "ASSETS_UNDER_MAINTENANCE"
	IntentCountOpenTickets       Intent = "COUNT_OPEN_TICKETS"
	IntentUnknown                Intent = "UNKNOWN"
)

// UnknownIntentMessage is returned when no rule matches.
const UnknownIntentMessage = "Sorry, I couldn't understand your query."

type intentRule struct {
	intent  Intent
	matches func(q string) bool
}

func containsAll(parts ...string) func(string) bool {
	return func(q string) bool {
		for _, p := range parts {
			if !strings.Contains(q, p) {
				return false
			}
		}
		return true
	}
}

// intentRules are evaluated in order and the first match wins. The count rule
// sits after the plain "open tickets" rule and therefore never fires; that
// precedence is relied on by existing clients.
var intentRules = []intentRule{
	{IntentOpenTickets, containsAll("open tickets")},
	{IntentHighPriorityTickets, containsAll("high priority")},
	{IntentMyAssignedTickets, containsAll("assigned to me")},
	{IntentAssetsUnderMaintenance, containsAll("under maintenance")},
	{IntentCountOpenTickets, containsAll("how many", "open tickets")},
}

// ResolveIntent maps free text to an intent by case-insensitive substring
// rules.
func ResolveIntent(query string) Intent {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		if rule.matches(q) {
			return rule.intent
		}
	}
	return IntentUnknown
}

// ChatbotResult carries the data for the resolved intent. Exactly one of
// Tickets, Assets, Count or Message is meaningful.
type ChatbotResult struct {
	Intent  Intent
	Tickets []domain.Ticket
	Assets  []domain.Asset
	Count   *int64
	Message string
}

// ChatbotService answers canned questions about tickets and assets.
type ChatbotService struct {
	tickets *TicketService
	assets  *AssetService
}

// NewChatbotService constructs the service.
func NewChatbotService(tickets *TicketService, assets *AssetService) *ChatbotService {
	return &ChatbotService{tickets: tickets, assets: assets}
}

// Query resolves the text and runs the matching store query. Only an empty
// query is rejected; blank text resolves to IntentUnknown.
func (s *ChatbotService) Query(ctx context.Context, actor domain.Principal, query string) (*ChatbotResult, error) {
	if query == "" {
		return nil, apperrors.NewValidationError("Query is required", nil)
	}

	intent := ResolveIntent(query)
	result := &ChatbotResult{Intent: intent}
	var err error

	switch intent {
	case IntentOpenTickets:
		result.Tickets, err = s.tickets.TicketsByStatus(ctx, domain.TicketStatusOpen)
	case IntentHighPriorityTickets:
		result.Tickets, err = s.tickets.TicketsByPriority(ctx, domain.TicketPriorityHigh)
	case IntentMyAssignedTickets:
		result.Tickets, err = s.tickets.TicketsAssignedTo(ctx, actor.ID)
	case IntentAssetsUnderMaintenance:
		result.Assets, err = s.assets.AssetsByStatus(ctx, domain.AssetStatusUnderMaintenance)
	case IntentCountOpenTickets:
		var count int64
		count, err = s.tickets.CountByStatus(ctx, domain.TicketStatusOpen)
		result.Count = &count
	case IntentUnknown:
		result.Message = UnknownIntentMessage
	default:
		return nil, fmt.Errorf("unhandled intent %s", intent)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
