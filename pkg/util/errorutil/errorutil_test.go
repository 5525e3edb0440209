package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("load: %w", NewNotFound("asset", nil)), "NOT_FOUND", http.StatusNotFound},
		{"conflict", NewConflict("dup", nil), "CONFLICT", http.StatusConflict},
		{"forbidden", NewForbidden("no"), "FORBIDDEN", http.StatusForbidden},
		{"plain error", errors.New("connection reset"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			if got.Code != tt.wantCode || got.HTTPStatus != tt.wantStatus {
				t.Errorf("ToDomainError(%v) = %s/%d, want %s/%d", tt.err, got.Code, got.HTTPStatus, tt.wantCode, tt.wantStatus)
			}
		})
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	got := ToDomainError(cause)
	if got.Message != "internal server error" {
		t.Errorf("Message = %q, want generic message", got.Message)
	}
	if !errors.Is(got, cause) {
		t.Error("expected cause to stay reachable through Unwrap")
	}
}

func TestNilPassesThrough(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Error("ToDomainError(nil) should be nil")
	}
	if MapError(nil) != nil {
		t.Error("MapError(nil) should be nil")
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(NewNotFound("user", nil), "NOT_FOUND") {
		t.Error("expected NOT_FOUND")
	}
	if IsCode(errors.New("x"), "NOT_FOUND") {
		t.Error("plain error should not match")
	}
}
