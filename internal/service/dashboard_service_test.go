package service

import (
	"context"
	"testing"

	"github.com/labtrack/labtrack-service/internal/domain"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	stats, err := f.dashboard.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalAssets != 0 || len(stats.TicketsByStatus) != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	a := f.asset(t, "A-1", domain.AssetStatusActive)
	f.asset(t, "A-2", domain.AssetStatusActive)
	f.asset(t, "A-3", domain.AssetStatusDecommissioned)
	f.ticket(t, "one", a.ID, domain.TicketPriorityLow)
	f.ticket(t, "two", a.ID, domain.TicketPriorityLow)
	third := f.ticket(t, "three", a.ID, domain.TicketPriorityLow)
	if _, err := f.tickets.UpdateStatus(ctx, f.tech, third.ID, domain.TicketStatusInProgress); err != nil {
		t.Fatal(err)
	}

	stats, err = f.dashboard.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalAssets != 3 || stats.OpenTickets != 2 || stats.InProgressTickets != 1 {
		t.Errorf("stats = %+v", stats)
	}

	wantTickets := map[string]int64{"OPEN": 2, "IN_PROGRESS": 1}
	if len(stats.TicketsByStatus) != len(wantTickets) {
		t.Fatalf("ticket groups = %+v", stats.TicketsByStatus)
	}
	for _, g := range stats.TicketsByStatus {
		if wantTickets[g.Status] != g.Count {
			t.Errorf("tickets %s = %d", g.Status, g.Count)
		}
	}
	wantAssets := map[string]int64{"ACTIVE": 2, "DECOMMISSIONED": 1}
	for _, g := range stats.AssetsByStatus {
		if wantAssets[g.Status] != g.Count {
			t.Errorf("assets %s = %d", g.Status, g.Count)
		}
	}
}
