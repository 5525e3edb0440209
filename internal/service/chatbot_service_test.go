package service

import (
	"context"
	"testing"

	"github.com/labtrack/labtrack-service/internal/domain"
)

func TestResolveIntent(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"show open tickets", IntentOpenTickets},
		{"Show OPEN TICKETS please", IntentOpenTickets},
		// The plain rule is checked first, so the count rule is unreachable.
		{"how many open tickets", IntentOpenTickets},
		{"any high priority issues?", IntentHighPriorityTickets},
		{"what is assigned to me", IntentMyAssignedTickets},
		{"assets under maintenance", IntentAssetsUnderMaintenance},
		{"high priority open tickets", IntentOpenTickets},
		{"xyz unrelated", IntentUnknown},
		{"", IntentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := ResolveIntent(tt.query); got != tt.want {
				t.Errorf("ResolveIntent(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestChatbotQuery(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	active := f.asset(t, "A-1", domain.AssetStatusActive)
	f.asset(t, "A-2", domain.AssetStatusUnderMaintenance)
	open := f.ticket(t, "open", active.ID, domain.TicketPriorityHigh)
	done := f.ticket(t, "done", active.ID, domain.TicketPriorityLow)
	if _, err := f.tickets.UpdateStatus(ctx, f.tech, done.ID, domain.TicketStatusClosed); err != nil {
		t.Fatal(err)
	}
	if _, err := f.tickets.AssignTicket(ctx, f.admin, done.ID, f.tech.ID); err != nil {
		t.Fatal(err)
	}

	res, err := f.chatbot.Query(ctx, f.tech, "open tickets")
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != IntentOpenTickets || len(res.Tickets) != 1 || res.Tickets[0].ID != open.ID {
		t.Errorf("open tickets = %+v", res)
	}

	res, err = f.chatbot.Query(ctx, f.tech, "high priority")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tickets) != 1 || res.Tickets[0].ID != open.ID {
		t.Errorf("high priority = %+v", res.Tickets)
	}

	res, err = f.chatbot.Query(ctx, f.tech, "assigned to me")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tickets) != 1 || res.Tickets[0].ID != done.ID {
		t.Errorf("assigned to me = %+v", res.Tickets)
	}

	res, err = f.chatbot.Query(ctx, f.tech, "under maintenance")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Assets) != 1 || res.Assets[0].AssetCode != "A-2" {
		t.Errorf("under maintenance = %+v", res.Assets)
	}

	res, err = f.chatbot.Query(ctx, f.tech, "xyz unrelated")
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != IntentUnknown || res.Message != UnknownIntentMessage {
		t.Errorf("unknown = %+v", res)
	}

	res, err = f.chatbot.Query(ctx, f.tech, "  ")
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != IntentUnknown {
		t.Errorf("blank query intent = %s, want UNKNOWN", res.Intent)
	}

	_, err = f.chatbot.Query(ctx, f.tech, "")
	wantCode(t, err, "VALIDATION_FAILED")
}
