package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

func requestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if id != "" {
		req.Header.Set(HeaderXRequestID, id)
	}
	return req
}

func TestRequestID_GeneratesUUIDv7(t *testing.T) {
	e := newTestEcho(RequestID())
	e.GET("/health", ok)

	rec := serve(e, requestWithID(""))

	id, err := uuid.Parse(rec.Header().Get(HeaderXRequestID))
	if err != nil {
		t.Fatalf("expected UUID, got %q: %v", rec.Header().Get(HeaderXRequestID), err)
	}
	if id.Version() != 7 {
		t.Fatalf("expected UUID version 7, got %d", id.Version())
	}
}

func TestRequestID_PreservesValid(t *testing.T) {
	e := newTestEcho(RequestID())
	e.GET("/health", ok)

	rec := serve(e, requestWithID("my-custom-id-123"))
	if got := rec.Header().Get(HeaderXRequestID); got != "my-custom-id-123" {
		t.Fatalf("expected 'my-custom-id-123', got %q", got)
	}
}

func TestRequestID_ReplacesInvalid(t *testing.T) {
	e := newTestEcho(RequestID())
	e.GET("/health", ok)

	for _, id := range []string{strings.Repeat("a", 129), "caf\xc3\xa9"} {
		rec := serve(e, requestWithID(id))
		got := rec.Header().Get(HeaderXRequestID)
		if got == id {
			t.Fatalf("expected %q to be replaced", id)
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("expected generated UUID, got %q", got)
		}
	}
}

func TestRequestID_SetsInContext(t *testing.T) {
	e := newTestEcho(RequestID())
	var ctxID string
	e.GET("/health", func(c *echo.Context) error {
		ctxID, _ = c.Get(ContextKeyRequestID).(string)
		return c.NoContent(http.StatusOK)
	})

	serve(e, requestWithID("ctx-test-id"))
	if ctxID != "ctx-test-id" {
		t.Fatalf("expected context request ID 'ctx-test-id', got %q", ctxID)
	}
}

func TestIsValidRequestID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"valid alphanumeric", "abc-123", true},
		{"valid UUID", "550e8400-e29b-41d4-a716-446655440000", true},
		{"empty", "", false},
		{"max length", strings.Repeat("x", 128), true},
		{"too long", strings.Repeat("x", 129), false},
		{"with space", "has space", true},
		{"with tab", "has\ttab", false},
		{"with newline", "has\nnewline", false},
		{"non-ascii", "caf\xc3\xa9", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidRequestID(tt.id); got != tt.valid {
				t.Fatalf("isValidRequestID(%q) = %v, want %v", tt.id, got, tt.valid)
			}
		})
	}
}
