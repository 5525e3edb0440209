// Package memory provides in-process implementations of the repository
// interfaces. They enforce the same uniqueness and referential rules as the
// Postgres schema and back the service when no DSN is configured.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/repository"
)

// Store holds all tables behind a single lock.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*domain.User
	assets   map[string]*domain.Asset
	tickets  map[string]*domain.Ticket
	comments map[string]*domain.Comment
	seq      map[string]uint64
	nextSeq  uint64
	lastTime time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:    make(map[string]*domain.User),
		assets:   make(map[string]*domain.Asset),
		tickets:  make(map[string]*domain.Ticket),
		comments: make(map[string]*domain.Comment),
		seq:      make(map[string]uint64),
	}
}

// Users returns the account repository.
func (s *Store) Users() repository.UserRepository { return &userRepository{s} }

// Assets returns the asset repository.
func (s *Store) Assets() repository.AssetRepository { return &assetRepository{s} }

// Tickets returns the ticket repository.
func (s *Store) Tickets() repository.TicketRepository { return &ticketRepository{s} }

// Comments returns the comment repository.
func (s *Store) Comments() repository.CommentRepository { return &commentRepository{s} }

// stamp assigns an id, a strictly increasing timestamp and an insertion
// sequence. Callers hold the write lock.
func (s *Store) stamp() (string, time.Time) {
	now := time.Now().UTC()
	if !now.After(s.lastTime) {
		now = s.lastTime.Add(time.Microsecond)
	}
	s.lastTime = now
	id := uuid.NewString()
	s.nextSeq++
	s.seq[id] = s.nextSeq
	return id, now
}

// newerFirst orders by creation time descending, then insertion order.
func (s *Store) newerFirst(aID string, aAt time.Time, bID string, bAt time.Time) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return s.seq[aID] > s.seq[bID]
}

type userRepository struct{ s *Store }

func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID, user.CreatedAt = r.s.stamp()
	user.UpdatedAt = user.CreatedAt
	stored := cloneUser(user)
	r.s.users[user.ID] = &stored
	return nil
}

func (r *userRepository) Update(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.s.users {
		if id != user.ID && existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.UpdatedAt = time.Now().UTC()
	stored := cloneUser(user)
	r.s.users[user.ID] = &stored
	return nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	for _, asset := range r.s.assets {
		if asset.CreatedByID == id {
			return repository.ErrReferenced
		}
	}
	for _, ticket := range r.s.tickets {
		if ticket.ReportedByID == id {
			return repository.ErrReferenced
		}
	}
	for _, comment := range r.s.comments {
		if comment.UserID == id {
			return repository.ErrReferenced
		}
	}
	for _, ticket := range r.s.tickets {
		if ticket.AssignedToID != nil && *ticket.AssignedToID == id {
			ticket.AssignedToID = nil
		}
	}
	delete(r.s.users, id)
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *user
	return &out, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Email == email {
			out := *user
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]domain.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool {
		return r.s.newerFirst(result[i].ID, result[i].CreatedAt, result[j].ID, result[j].CreatedAt)
	})
	return result, nil
}

func (r *userRepository) ListByIDs(_ context.Context, ids []string) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []domain.User
	for _, id := range uniq(ids) {
		if user, ok := r.s.users[id]; ok {
			result = append(result, *user)
		}
	}
	return result, nil
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
