package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapPgError(t *testing.T) {
	other := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, ErrDuplicate},
		{"foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "tickets_asset_id_fkey"}, ErrReferenced},
		{"other", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapPgError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("mapPgError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
	if mapPgError(nil) != nil {
		t.Error("mapPgError(nil) should be nil")
	}
}
