package domain

import "testing"

func TestEnumValidity(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		want  bool
	}{
		{"admin role", Role("ADMIN").Valid(), true},
		{"lowercase role", Role("admin").Valid(), false},
		{"unknown role", Role("MANAGER").Valid(), false},
		{"cancelled status", TicketStatus("CANCELLED").Valid(), true},
		{"pending status", TicketStatus("PENDING_USER").Valid(), false},
		{"empty status", TicketStatus("").Valid(), false},
		{"high priority", TicketPriority("HIGH").Valid(), true},
		{"urgent priority", TicketPriority("URGENT").Valid(), false},
		{"maintenance asset", AssetStatus("UNDER_MAINTENANCE").Valid(), true},
		{"lost asset", AssetStatus("LOST").Valid(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.valid != tt.want {
				t.Errorf("Valid() = %v, want %v", tt.valid, tt.want)
			}
		})
	}
}
