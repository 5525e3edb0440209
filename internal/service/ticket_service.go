package service

import (
	"context"
	"errors"
	"strings"

	"github.com/labtrack/labtrack-service/internal/auth"
	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/events"
	"github.com/labtrack/labtrack-service/internal/repository"
	apperrors "github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	assets     repository.AssetRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	CommentRepo repository.CommentRepository
	AssetRepo   repository.AssetRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	AssetID     string
	Priority    domain.TicketPriority
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		assets:     deps.AssetRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket opens a ticket reported by the caller.
func (s *TicketService) CreateTicket(ctx context.Context, actor domain.Principal, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		AssetID:      strings.TrimSpace(input.AssetID),
		Status:       domain.TicketStatusOpen,
		Priority:     input.Priority,
		ReportedByID: actor.ID,
	}
	if ticket.Title == "" || ticket.AssetID == "" {
		return nil, apperrors.NewValidationError("title and assetId required", nil)
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if !ticket.Priority.Valid() {
		return nil, apperrors.NewValidationError("invalid ticket priority", map[string]any{"priority": ticket.Priority})
	}
	if _, err := s.assets.GetByID(ctx, ticket.AssetID); err != nil {
		return nil, notFound(err, "Asset", ticket.AssetID)
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return nil, apperrors.NewNotFound("Asset", map[string]any{"id": ticket.AssetID})
		}
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:       events.EventTicketCreated,
		ResourceID: ticket.ID,
		Actor:      actorOf(actor),
		Payload: events.TicketCreatedPayload{
			AssetID:  ticket.AssetID,
			Priority: ticket.Priority,
			Title:    ticket.Title,
		},
	})
	return ticket, nil
}

// ListTickets returns the tickets the caller may see, newest first, with
// asset, reporter, assignee and comments loaded.
func (s *TicketService) ListTickets(ctx context.Context, actor domain.Principal) ([]domain.TicketView, error) {
	visibility := auth.TicketVisibilityFor(actor)
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{Visibility: &visibility})
	if err != nil {
		return nil, err
	}
	return s.withRelations(ctx, tickets)
}

// UpdateStatus moves a ticket to any valid status.
func (s *TicketService) UpdateStatus(ctx context.Context, actor domain.Principal, ticketID string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("Invalid ticket status", map[string]any{"status": newStatus})
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, notFound(err, "Ticket", ticketID)
	}

	oldStatus := ticket.Status
	ticket.Status = newStatus
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, notFound(err, "Ticket", ticketID)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:       events.EventTicketStatusChanged,
		ResourceID: ticket.ID,
		Actor:      actorOf(actor),
		Payload:    events.TicketStatusChangedPayload{OldStatus: oldStatus, NewStatus: newStatus},
	})
	return ticket, nil
}

// AssignTicket sets or clears the assignee. The assignee's role is not
// checked.
func (s *TicketService) AssignTicket(ctx context.Context, actor domain.Principal, ticketID, assigneeID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, notFound(err, "Ticket", ticketID)
	}

	var assignee *string
	if id := strings.TrimSpace(assigneeID); id != "" {
		if _, err := s.users.GetByID(ctx, id); err != nil {
			return nil, notFound(err, "User", id)
		}
		assignee = &id
	}

	previous := ticket.AssignedToID
	ticket.AssignedToID = assignee
	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return nil, apperrors.NewNotFound("User", map[string]any{"id": assigneeID})
		}
		return nil, notFound(err, "Ticket", ticketID)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:       events.EventTicketAssigned,
		ResourceID: ticket.ID,
		Actor:      actorOf(actor),
		Payload:    events.TicketAssignedPayload{PreviousAssigneeID: previous, AssigneeID: assignee},
	})
	return ticket, nil
}

// AddComment appends a comment authored by the caller.
func (s *TicketService) AddComment(ctx context.Context, actor domain.Principal, ticketID, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("content required", nil)
	}
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, notFound(err, "Ticket", ticketID)
	}

	comment := &domain.Comment{Content: content, TicketID: ticketID, UserID: actor.ID}
	if err := s.comments.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return nil, apperrors.NewNotFound("Ticket", map[string]any{"id": ticketID})
		}
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:       events.EventTicketCommentAdded,
		ResourceID: ticketID,
		Actor:      actorOf(actor),
		Payload: events.TicketCommentAddedPayload{
			CommentID:   comment.ID,
			BodyPreview: stringPreview(content, 140),
		},
	})
	return comment, nil
}

// TicketsByStatus lists tickets in a status without relations.
func (s *TicketService) TicketsByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, repository.TicketFilter{Statuses: []domain.TicketStatus{status}})
}

// TicketsByPriority lists tickets with a priority without relations.
func (s *TicketService) TicketsByPriority(ctx context.Context, priority domain.TicketPriority) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, repository.TicketFilter{Priorities: []domain.TicketPriority{priority}})
}

// TicketsAssignedTo lists tickets assigned to a user without relations.
func (s *TicketService) TicketsAssignedTo(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, repository.TicketFilter{AssigneeID: &userID})
}

// CountByStatus counts tickets in a status.
func (s *TicketService) CountByStatus(ctx context.Context, status domain.TicketStatus) (int64, error) {
	return s.tickets.Count(ctx, repository.TicketFilter{Statuses: []domain.TicketStatus{status}})
}

func (s *TicketService) withRelations(ctx context.Context, tickets []domain.Ticket) ([]domain.TicketView, error) {
	views := make([]domain.TicketView, 0, len(tickets))
	if len(tickets) == 0 {
		return views, nil
	}

	ticketIDs := make([]string, 0, len(tickets))
	assetIDs := make([]string, 0, len(tickets))
	userIDs := make([]string, 0, len(tickets)*2)
	for _, t := range tickets {
		ticketIDs = append(ticketIDs, t.ID)
		assetIDs = append(assetIDs, t.AssetID)
		userIDs = append(userIDs, t.ReportedByID)
		if t.AssignedToID != nil {
			userIDs = append(userIDs, *t.AssignedToID)
		}
	}

	comments, err := s.comments.ListByTickets(ctx, ticketIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}

	assets, err := s.assets.ListByIDs(ctx, assetIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	assetByID := make(map[string]*domain.Asset, len(assets))
	for i := range assets {
		assetByID[assets[i].ID] = &assets[i]
	}
	userByID := make(map[string]*domain.User, len(users))
	for i := range users {
		userByID[users[i].ID] = &users[i]
	}
	commentsByTicket := make(map[string][]domain.CommentView, len(tickets))
	for _, c := range comments {
		commentsByTicket[c.TicketID] = append(commentsByTicket[c.TicketID], domain.CommentView{Comment: c, Author: userByID[c.UserID]})
	}

	for _, t := range tickets {
		view := domain.TicketView{
			Ticket:     t,
			Asset:      assetByID[t.AssetID],
			ReportedBy: userByID[t.ReportedByID],
			Comments:   commentsByTicket[t.ID],
		}
		if t.AssignedToID != nil {
			view.AssignedTo = userByID[*t.AssignedToID]
		}
		if view.Comments == nil {
			view.Comments = []domain.CommentView{}
		}
		views = append(views, view)
	}
	return views, nil
}
