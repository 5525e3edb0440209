package dto

// ChatbotRequest payload.
type ChatbotRequest struct {
	Query string `json:"query"`
}

// ChatbotResponse carries either data or a message for the resolved intent.
type ChatbotResponse struct {
	Intent  string `json:"intent"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// CountResponse wraps a bare count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// StatusCountResponse is one chart bucket.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardTotals are the headline numbers.
type DashboardTotals struct {
	Assets      int64 `json:"assets"`
	OpenTickets int64 `json:"openTickets"`
	InProgress  int64 `json:"inProgress"`
}

// DashboardResponse view.
type DashboardResponse struct {
	Stats       DashboardTotals       `json:"stats"`
	TicketChart []StatusCountResponse `json:"ticketChart"`
	AssetChart  []StatusCountResponse `json:"assetChart"`
}
