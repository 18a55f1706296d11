package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"dead session", fmt.Errorf("cms: GET /posts: %w", domain.ErrUnauthorized), http.StatusUnauthorized, "session expired"},
		{"not found", fmt.Errorf("%w: post not found", domain.ErrNotFound), http.StatusNotFound, "not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["error"] != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, body["error"])
			}
		})
	}
}

func TestErrorHandler_UpstreamPassthrough(t *testing.T) {
	err := &domain.UpstreamError{Status: http.StatusConflict, Message: "slug already taken"}

	rec, body := renderError(t, err)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body["error"] != "slug already taken" {
		t.Fatalf("expected upstream message, got %q", body["error"])
	}
}

func TestErrorHandler_EchoErrorsKeepTheirCode(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("unexpected message %q", body["error"])
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}
}
