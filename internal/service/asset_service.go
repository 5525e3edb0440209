package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/events"
	"github.com/labtrack/labtrack-service/internal/repository"
	apperrors "github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

const (
	DefaultAssetPage  = 1
	DefaultAssetLimit = 10
	MaxAssetLimit     = 100
)

// AssetService manages the equipment register.
type AssetService struct {
	assets     repository.AssetRepository
	dispatcher events.Dispatcher
}

// AssetCreateInput describes a new asset.
type AssetCreateInput struct {
	Name         string
	AssetCode    string
	SerialNumber *string
	Location     string
	Status       domain.AssetStatus
	QRCode       string
}

// AssetUpdateInput carries the fields to merge; nil means unchanged. An empty
// SerialNumber clears it.
type AssetUpdateInput struct {
	Name         *string
	AssetCode    *string
	SerialNumber *string
	Location     *string
	Status       *domain.AssetStatus
	QRCode       *string
}

// AssetPage is one page of assets. There is no total; a short page is the last.
type AssetPage struct {
	Page  int
	Limit int
	Data  []domain.Asset
}

// NewAssetService constructs the service.
func NewAssetService(assets repository.AssetRepository, dispatcher events.Dispatcher) *AssetService {
	return &AssetService{assets: assets, dispatcher: dispatcher}
}

// Create registers an asset owned by the caller.
func (s *AssetService) Create(ctx context.Context, actor domain.Principal, in AssetCreateInput) (*domain.Asset, error) {
	asset := &domain.Asset{
		Name:         strings.TrimSpace(in.Name),
		AssetCode:    strings.TrimSpace(in.AssetCode),
		SerialNumber: trimmedPtr(in.SerialNumber),
		Location:     strings.TrimSpace(in.Location),
		Status:       in.Status,
		QRCode:       strings.TrimSpace(in.QRCode),
		CreatedByID:  actor.ID,
	}
	if asset.Name == "" || asset.AssetCode == "" || asset.Location == "" || asset.Status == "" || asset.QRCode == "" {
		return nil, apperrors.NewValidationError("All required fields must be provided", nil)
	}
	if !asset.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid asset status", map[string]any{"status": asset.Status})
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, translateAssetWriteError(err, asset)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:       events.EventAssetCreated,
		ResourceID: asset.ID,
		Actor:      actorOf(actor),
		Payload:    events.AssetPayload{AssetCode: asset.AssetCode, Status: asset.Status},
	})
	return asset, nil
}

// List returns a page of assets, newest first. Non-positive page or limit
// fall back to the defaults and limit is capped at MaxAssetLimit.
func (s *AssetService) List(ctx context.Context, page, limit int) (*AssetPage, error) {
	if page < 1 {
		page = DefaultAssetPage
	}
	if limit < 1 {
		limit = DefaultAssetLimit
	}
	if limit > MaxAssetLimit {
		limit = MaxAssetLimit
	}
	// A page whose offset does not fit in an int lies past any stored row.
	if page-1 > math.MaxInt/limit {
		return &AssetPage{Page: page, Limit: limit, Data: []domain.Asset{}}, nil
	}
	assets, err := s.assets.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return &AssetPage{Page: page, Limit: limit, Data: assets}, nil
}

// Update merges the provided fields into the asset.
func (s *AssetService) Update(ctx context.Context, id string, in AssetUpdateInput) (*domain.Asset, error) {
	asset, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Asset", id)
	}

	required := []struct {
		src *string
		dst *string
	}{
		{in.Name, &asset.Name},
		{in.AssetCode, &asset.AssetCode},
		{in.Location, &asset.Location},
		{in.QRCode, &asset.QRCode},
	}
	for _, f := range required {
		if f.src == nil {
			continue
		}
		v := strings.TrimSpace(*f.src)
		if v == "" {
			return nil, apperrors.NewValidationError("required fields cannot be blank", nil)
		}
		*f.dst = v
	}
	if in.SerialNumber != nil {
		asset.SerialNumber = trimmedPtr(in.SerialNumber)
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, apperrors.NewValidationError("invalid asset status", map[string]any{"status": *in.Status})
		}
		asset.Status = *in.Status
	}

	if err := s.assets.Update(ctx, asset); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(err, "Asset", id)
		}
		return nil, translateAssetWriteError(err, asset)
	}
	return asset, nil
}

// Delete removes an asset no ticket refers to.
func (s *AssetService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	asset, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return notFound(err, "Asset", id)
	}
	if err := s.assets.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return apperrors.NewConflict("Asset has tickets and cannot be deleted", map[string]any{"id": id})
		}
		return notFound(err, "Asset", id)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:       events.EventAssetDeleted,
		ResourceID: id,
		Actor:      actorOf(actor),
		Payload:    events.AssetPayload{AssetCode: asset.AssetCode},
	})
	return nil
}

// AssetsByStatus lists assets in the given status.
func (s *AssetService) AssetsByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.Asset, error) {
	return s.assets.ListByStatus(ctx, status)
}

func translateAssetWriteError(err error, asset *domain.Asset) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return apperrors.NewConflict("Asset code already exists", map[string]any{"assetCode": asset.AssetCode})
	}
	return err
}
