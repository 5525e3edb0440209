package auth

import (
	"testing"

	"github.com/labtrack/labtrack-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestTicketVisibilityFor(t *testing.T) {
	const self = "me"
	tickets := map[string]*domain.Ticket{
		"reported":   {ID: "reported", ReportedByID: self},
		"assigned":   {ID: "assigned", ReportedByID: "other", AssignedToID: strPtr(self)},
		"foreign":    {ID: "foreign", ReportedByID: "other", AssignedToID: strPtr("someone")},
		"unassigned": {ID: "unassigned", ReportedByID: "other"},
	}

	tests := []struct {
		role domain.Role
		want []string
	}{
		{domain.RoleAdmin, []string{"reported", "assigned", "foreign", "unassigned"}},
		{domain.RoleEngineer, []string{"reported", "assigned"}},
		{domain.RoleTechnician, []string{"assigned"}},
		{domain.Role("AUDITOR"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			v := TicketVisibilityFor(domain.Principal{ID: self, Role: tt.role})
			want := map[string]bool{}
			for _, id := range tt.want {
				want[id] = true
			}
			for id, ticket := range tickets {
				if got := v.Allows(ticket); got != want[id] {
					t.Errorf("Allows(%s) = %v, want %v", id, got, want[id])
				}
			}
		})
	}
}

func TestCan(t *testing.T) {
	tests := []struct {
		role   domain.Role
		action Action
		want   bool
	}{
		{domain.RoleAdmin, ActionRegisterUser, true},
		{domain.RoleEngineer, ActionRegisterUser, false},
		{domain.RoleAdmin, ActionManageAssets, true},
		{domain.RoleTechnician, ActionManageAssets, false},
		{domain.RoleTechnician, ActionListAssets, true},
		{domain.RoleEngineer, ActionCreateTicket, true},
		{domain.RoleAdmin, ActionCreateTicket, false},
		{domain.RoleTechnician, ActionCreateTicket, false},
		{domain.RoleTechnician, ActionUpdateTicketStatus, true},
		{domain.RoleAdmin, ActionUpdateTicketStatus, false},
		{domain.RoleAdmin, ActionAssignTicket, true},
		{domain.RoleEngineer, ActionAssignTicket, false},
		{domain.RoleEngineer, ActionAddComment, true},
		{domain.RoleAdmin, ActionAddComment, false},
		{domain.RoleAdmin, ActionManageUsers, true},
		{domain.RoleTechnician, ActionManageUsers, false},
		{domain.RoleTechnician, ActionChatbotQuery, true},
		{domain.RoleEngineer, ActionViewDashboard, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.action), func(t *testing.T) {
			if got := Can(tt.role, tt.action); got != tt.want {
				t.Errorf("Can(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
			}
		})
	}
}
