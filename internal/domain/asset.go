package domain

import "time"

// AssetStatus enumerates the condition of a piece of equipment.
type AssetStatus string

const (
	AssetStatusActive           AssetStatus = "ACTIVE"
	AssetStatusUnderMaintenance AssetStatus = "UNDER_MAINTENANCE"
	AssetStatusDamaged          AssetStatus = "DAMAGED"
	AssetStatusDecommissioned   AssetStatus = "DECOMMISSIONED"
)

// Valid reports whether s is a known asset status.
func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusActive, AssetStatusUnderMaintenance, AssetStatusDamaged, AssetStatusDecommissioned:
		return true
	}
	return false
}

// Asset is a tracked piece of lab equipment.
type Asset struct {
	ID           string
	Name         string
	AssetCode    string
	SerialNumber *string
	Location     string
	Status       AssetStatus
	QRCode       string
	CreatedByID  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
