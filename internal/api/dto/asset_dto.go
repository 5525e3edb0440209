package dto

import (
	"time"

	"github.com/labtrack/labtrack-service/internal/domain"
)

// CreateAssetRequest payload.
type CreateAssetRequest struct {
	Name         string             `json:"name"`
	AssetCode    string             `json:"assetCode"`
	SerialNumber *string            `json:"serialNumber"`
	Location     string             `json:"location"`
	Status       domain.AssetStatus `json:"status"`
	QRCode       string             `json:"qrCode"`
}

// UpdateAssetRequest payload; absent fields are left unchanged.
type UpdateAssetRequest struct {
	Name         *string             `json:"name"`
	AssetCode    *string             `json:"assetCode"`
	SerialNumber *string             `json:"serialNumber"`
	Location     *string             `json:"location"`
	Status       *domain.AssetStatus `json:"status"`
	QRCode       *string             `json:"qrCode"`
}

// AssetResponse view.
type AssetResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	AssetCode    string             `json:"assetCode"`
	SerialNumber *string            `json:"serialNumber"`
	Location     string             `json:"location"`
	Status       domain.AssetStatus `json:"status"`
	QRCode       string             `json:"qrCode"`
	CreatedByID  string             `json:"createdById"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// AssetPageResponse is one page of assets.
type AssetPageResponse struct {
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Data  []AssetResponse `json:"data"`
}
