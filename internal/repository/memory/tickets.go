package memory

import (
	"context"
	"sort"
	"time"

	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/repository"
)

type ticketRepository struct{ s *Store }

func (r *ticketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkRefs(ticket); err != nil {
		return err
	}
	if _, ok := r.s.users[ticket.ReportedByID]; !ok {
		return repository.ErrReferenced
	}
	ticket.ID, ticket.CreatedAt = r.s.stamp()
	ticket.UpdatedAt = ticket.CreatedAt
	stored := cloneTicket(ticket)
	r.s.tickets[ticket.ID] = &stored
	return nil
}

func (r *ticketRepository) Update(_ context.Context, ticket *domain.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.tickets[ticket.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if err := r.checkRefs(ticket); err != nil {
		return err
	}
	ticket.ReportedByID = current.ReportedByID
	ticket.CreatedAt = current.CreatedAt
	ticket.UpdatedAt = time.Now().UTC()
	stored := cloneTicket(ticket)
	r.s.tickets[ticket.ID] = &stored
	return nil
}

func (r *ticketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ticket, ok := r.s.tickets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *ticket
	return &out, nil
}

func (r *ticketRepository) List(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []domain.Ticket
	for _, ticket := range r.s.tickets {
		if matches(ticket, filter) {
			result = append(result, *ticket)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return r.s.newerFirst(result[i].ID, result[i].CreatedAt, result[j].ID, result[j].CreatedAt)
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return nil, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *ticketRepository) Count(_ context.Context, filter repository.TicketFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, ticket := range r.s.tickets {
		if matches(ticket, filter) {
			count++
		}
	}
	return count, nil
}

func (r *ticketRepository) CountByStatus(_ context.Context) ([]domain.StatusCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int64)
	for _, ticket := range r.s.tickets {
		counts[string(ticket.Status)]++
	}
	return statusCounts(counts), nil
}

func (r *ticketRepository) checkRefs(ticket *domain.Ticket) error {
	if _, ok := r.s.assets[ticket.AssetID]; !ok {
		return repository.ErrReferenced
	}
	if ticket.AssignedToID != nil {
		if _, ok := r.s.users[*ticket.AssignedToID]; !ok {
			return repository.ErrReferenced
		}
	}
	return nil
}

func matches(ticket *domain.Ticket, filter repository.TicketFilter) bool {
	if filter.Visibility != nil && !filter.Visibility.Allows(ticket) {
		return false
	}
	if filter.AssigneeID != nil && (ticket.AssignedToID == nil || *ticket.AssignedToID != *filter.AssigneeID) {
		return false
	}
	if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, ticket.Status) {
		return false
	}
	if len(filter.Priorities) > 0 && !containsPriority(filter.Priorities, ticket.Priority) {
		return false
	}
	return true
}

func containsStatus(list []domain.TicketStatus, s domain.TicketStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsPriority(list []domain.TicketPriority, p domain.TicketPriority) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}

type commentRepository struct{ s *Store }

func (r *commentRepository) Create(_ context.Context, comment *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tickets[comment.TicketID]; !ok {
		return repository.ErrReferenced
	}
	if _, ok := r.s.users[comment.UserID]; !ok {
		return repository.ErrReferenced
	}
	comment.ID, comment.CreatedAt = r.s.stamp()
	stored := cloneComment(comment)
	r.s.comments[comment.ID] = &stored
	return nil
}

func (r *commentRepository) ListByTickets(_ context.Context, ticketIDs []string) ([]domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	wanted := make(map[string]struct{}, len(ticketIDs))
	for _, id := range ticketIDs {
		wanted[id] = struct{}{}
	}
	var result []domain.Comment
	for _, comment := range r.s.comments {
		if _, ok := wanted[comment.TicketID]; ok {
			result = append(result, *comment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return !r.s.newerFirst(result[i].ID, result[i].CreatedAt, result[j].ID, result[j].CreatedAt)
	})
	return result, nil
}
