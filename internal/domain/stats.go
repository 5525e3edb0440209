package domain

// StatusCount is one bucket of a group-by-status tally.
type StatusCount struct {
	Status string
	Count  int64
}

// DashboardStats aggregates counts across assets and tickets.
type DashboardStats struct {
	TotalAssets       int64
	OpenTickets       int64
	InProgressTickets int64
	TicketsByStatus   []StatusCount
	AssetsByStatus    []StatusCount
}
