package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/repository"
)

// DashboardService computes aggregate counts.
type DashboardService struct {
	assets  repository.AssetRepository
	tickets repository.TicketRepository
}

// NewDashboardService constructs the service.
func NewDashboardService(assets repository.AssetRepository, tickets repository.TicketRepository) *DashboardService {
	return &DashboardService{assets: assets, tickets: tickets}
}

// Stats runs the five aggregate reads concurrently and joins them. The first
// failure cancels the others.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalAssets, err = s.assets.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.OpenTickets, err = s.tickets.Count(gctx, statusFilter(domain.TicketStatusOpen))
		return err
	})
	g.Go(func() (err error) {
		stats.InProgressTickets, err = s.tickets.Count(gctx, statusFilter(domain.TicketStatusInProgress))
		return err
	})
	g.Go(func() (err error) {
		stats.TicketsByStatus, err = s.tickets.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.AssetsByStatus, err = s.assets.CountByStatus(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func statusFilter(status domain.TicketStatus) repository.TicketFilter {
	return repository.TicketFilter{Statuses: []domain.TicketStatus{status}}
}
