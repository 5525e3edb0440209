package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labtrack/labtrack-service/internal/domain"
)

// TicketFilter narrows ticket queries. A nil Visibility matches every ticket;
// Limit <= 0 means no limit.
type TicketFilter struct {
	Visibility *domain.TicketVisibility
	Statuses   []domain.TicketStatus
	Priorities []domain.TicketPriority
	AssigneeID *string
	Limit      int
	Offset     int
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Count(ctx context.Context, filter TicketFilter) (int64, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, title, description, asset_id, status, priority, reported_by_id, assigned_to_id, created_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (title, description, asset_id, status, priority, reported_by_id, assigned_to_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.AssetID,
		ticket.Status,
		ticket.Priority,
		ticket.ReportedByID,
		ticket.AssignedToID,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
	return mapPgError(err)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET title=$1, description=$2, asset_id=$3, status=$4, priority=$5, assigned_to_id=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.AssetID,
		ticket.Status,
		ticket.Priority,
		ticket.AssignedToID,
		ticket.ID,
	).Scan(&ticket.UpdatedAt)
	return mapPgError(err)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	row := r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
	if err := scanTicket(row, &ticket); err != nil {
		return nil, mapPgError(err)
	}
	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	where, args := buildTicketWhere(filter)
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ` + where + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) Count(ctx context.Context, filter TicketFilter) (int64, error) {
	where, args := buildTicketWhere(filter)
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE `+where, args...).Scan(&count)
	return count, err
}

func (r *ticketRepository) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM tickets GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStatusCounts(rows)
}

func buildTicketWhere(filter TicketFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if v := filter.Visibility; v != nil {
		switch v.Scope {
		case domain.VisibilityAll:
		case domain.VisibilityReportedOrAssigned:
			args = append(args, v.UserID)
			clauses = append(clauses, fmt.Sprintf("(reported_by_id=$%d OR assigned_to_id=$%d)", len(args), len(args)))
		case domain.VisibilityAssigned:
			args = append(args, v.UserID)
			clauses = append(clauses, fmt.Sprintf("assigned_to_id=$%d", len(args)))
		default:
			clauses = append(clauses, "FALSE")
		}
	}
	if filter.AssigneeID != nil {
		args = append(args, *filter.AssigneeID)
		clauses = append(clauses, fmt.Sprintf("assigned_to_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Priorities) > 0 {
		placeholders := make([]string, len(filter.Priorities))
		for i, pr := range filter.Priorities {
			args = append(args, pr)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("priority IN (%s)", strings.Join(placeholders, ",")))
	}
	return strings.Join(clauses, " AND "), args
}

func scanTicket(row pgx.Row, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.AssetID,
		&ticket.Status,
		&ticket.Priority,
		&ticket.ReportedByID,
		&ticket.AssignedToID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}
