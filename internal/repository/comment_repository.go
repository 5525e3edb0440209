package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labtrack/labtrack-service/internal/domain"
)

// CommentRepository manages ticket comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByTickets(ctx context.Context, ticketIDs []string) ([]domain.Comment, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository builds repository.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (content, ticket_id, user_id)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		comment.Content,
		comment.TicketID,
		comment.UserID,
	).Scan(&comment.ID, &comment.CreatedAt)
	return mapPgError(err)
}

func (r *commentRepository) ListByTickets(ctx context.Context, ticketIDs []string) ([]domain.Comment, error) {
	if len(ticketIDs) == 0 {
		return nil, nil
	}
	const query = `
        SELECT id, content, ticket_id, user_id, created_at
        FROM comments WHERE ticket_id = ANY($1) ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, ticketIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.Content,
			&comment.TicketID,
			&comment.UserID,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}
