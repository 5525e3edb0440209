package memory

import (
	"context"
	"sort"
	"time"

	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/repository"
)

type assetRepository struct{ s *Store }

func (r *assetRepository) Create(_ context.Context, asset *domain.Asset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(asset.AssetCode, "") {
		return repository.ErrDuplicate
	}
	if _, ok := r.s.users[asset.CreatedByID]; !ok {
		return repository.ErrReferenced
	}
	asset.ID, asset.CreatedAt = r.s.stamp()
	asset.UpdatedAt = asset.CreatedAt
	stored := cloneAsset(asset)
	r.s.assets[asset.ID] = &stored
	return nil
}

func (r *assetRepository) Update(_ context.Context, asset *domain.Asset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.assets[asset.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.codeTaken(asset.AssetCode, asset.ID) {
		return repository.ErrDuplicate
	}
	asset.CreatedByID = current.CreatedByID
	asset.CreatedAt = current.CreatedAt
	asset.UpdatedAt = time.Now().UTC()
	stored := cloneAsset(asset)
	r.s.assets[asset.ID] = &stored
	return nil
}

func (r *assetRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.assets[id]; !ok {
		return repository.ErrNotFound
	}
	for _, ticket := range r.s.tickets {
		if ticket.AssetID == id {
			return repository.ErrReferenced
		}
	}
	delete(r.s.assets, id)
	return nil
}

func (r *assetRepository) GetByID(_ context.Context, id string) (*domain.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	asset, ok := r.s.assets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *asset
	return &out, nil
}

func (r *assetRepository) List(_ context.Context, limit, offset int) ([]domain.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.sorted(func(*domain.Asset) bool { return true })
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := len(all)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *assetRepository) ListByStatus(_ context.Context, status domain.AssetStatus) ([]domain.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.sorted(func(a *domain.Asset) bool { return a.Status == status }), nil
}

func (r *assetRepository) ListByIDs(_ context.Context, ids []string) ([]domain.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []domain.Asset
	for _, id := range uniq(ids) {
		if asset, ok := r.s.assets[id]; ok {
			result = append(result, *asset)
		}
	}
	return result, nil
}

func (r *assetRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.assets)), nil
}

func (r *assetRepository) CountByStatus(_ context.Context) ([]domain.StatusCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int64)
	for _, asset := range r.s.assets {
		counts[string(asset.Status)]++
	}
	return statusCounts(counts), nil
}

func (r *assetRepository) codeTaken(code, exceptID string) bool {
	for id, asset := range r.s.assets {
		if id != exceptID && asset.AssetCode == code {
			return true
		}
	}
	return false
}

func (r *assetRepository) sorted(keep func(*domain.Asset) bool) []domain.Asset {
	var result []domain.Asset
	for _, asset := range r.s.assets {
		if keep(asset) {
			result = append(result, *asset)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return r.s.newerFirst(result[i].ID, result[i].CreatedAt, result[j].ID, result[j].CreatedAt)
	})
	return result
}

func statusCounts(counts map[string]int64) []domain.StatusCount {
	result := make([]domain.StatusCount, 0, len(counts))
	for status, count := range counts {
		result = append(result, domain.StatusCount{Status: status, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Status < result[j].Status })
	return result
}
