package domain

// VisibilityScope selects which tickets a caller may list.
type VisibilityScope int

const (
	// VisibilityNone matches no tickets.
	VisibilityNone VisibilityScope = iota
	// VisibilityAll matches every ticket.
	VisibilityAll
	// VisibilityReportedOrAssigned matches tickets the user reported or is assigned to.
	VisibilityReportedOrAssigned
	// VisibilityAssigned matches tickets assigned to the user.
	VisibilityAssigned
)

// TicketVisibility is a role-derived ticket filter bound to one user.
type TicketVisibility struct {
	Scope  VisibilityScope
	UserID string
}

// Allows reports whether the ticket passes the filter.
func (v TicketVisibility) Allows(t *Ticket) bool {
	switch v.Scope {
	case VisibilityAll:
		return true
	case VisibilityReportedOrAssigned:
		return t.ReportedByID == v.UserID || assignedTo(t, v.UserID)
	case VisibilityAssigned:
		return assignedTo(t, v.UserID)
	default:
		return false
	}
}

func assignedTo(t *Ticket, userID string) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}
