package auth

import "github.com/labtrack/labtrack-service/internal/domain"

// Action names a role-gated operation.
type Action string

const (
	ActionRegisterUser       Action = "user.register"
	ActionManageAssets       Action = "asset.manage"
	ActionListAssets         Action = "asset.list"
	ActionCreateTicket       Action = "ticket.create"
	ActionListTickets        Action = "ticket.list"
	ActionUpdateTicketStatus Action = "ticket.status"
	ActionAssignTicket       Action = "ticket.assign"
	ActionAddComment         Action = "ticket.comment"
	ActionManageUsers        Action = "user.manage"
	ActionChatbotQuery       Action = "chatbot.query"
	ActionViewDashboard      Action = "dashboard.view"
)

var allRoles = []domain.Role{domain.RoleAdmin, domain.RoleEngineer, domain.RoleTechnician}

// Actions missing from the table only require authentication.
var routePolicy = map[Action][]domain.Role{
	ActionRegisterUser:       {domain.RoleAdmin},
	ActionManageAssets:       {domain.RoleAdmin},
	ActionListAssets:         allRoles,
	ActionCreateTicket:       {domain.RoleEngineer},
	ActionListTickets:        allRoles,
	ActionUpdateTicketStatus: {domain.RoleEngineer, domain.RoleTechnician},
	ActionAssignTicket:       {domain.RoleAdmin},
	ActionAddComment:         {domain.RoleEngineer, domain.RoleTechnician},
	ActionManageUsers:        {domain.RoleAdmin},
}

// Can reports whether role may perform action.
func Can(role domain.Role, action Action) bool {
	roles, ok := routePolicy[action]
	if !ok {
		return role != ""
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// TicketVisibilityFor computes the ticket filter for the principal. Unknown
// roles see nothing.
func TicketVisibilityFor(p domain.Principal) domain.TicketVisibility {
	switch p.Role {
	case domain.RoleAdmin:
		return domain.TicketVisibility{Scope: domain.VisibilityAll}
	case domain.RoleEngineer:
		return domain.TicketVisibility{Scope: domain.VisibilityReportedOrAssigned, UserID: p.ID}
	case domain.RoleTechnician:
		return domain.TicketVisibility{Scope: domain.VisibilityAssigned, UserID: p.ID}
	default:
		return domain.TicketVisibility{Scope: domain.VisibilityNone, UserID: p.ID}
	}
}
