package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

// stubSessions resolves every session to a fixed state.
type stubSessions struct {
	session domain.Session
}

func (s *stubSessions) Resolve(context.Context, string) domain.Session {
	return s.session
}

func (s *stubSessions) Login(context.Context, string, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubSessions) Logout(context.Context, string) {}

func gateContext(t *testing.T, path, sid string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sid != "" {
		c.Set("session_id", sid)
	}
	return c, rec
}

func TestRequireSession_AuthenticatedPasses(t *testing.T) {
	user := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}
	sessions := &stubSessions{session: domain.Session{User: user, State: domain.StateAuthenticated}}

	c, rec := gateContext(t, "/admin/api/posts", "sid1")

	called := false
	handler := RequireSession(sessions)(func(c echo.Context) error {
		called = true
		if SessionUser(c) != user {
			t.Fatalf("session user not propagated")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, called=%v code=%d", called, rec.Code)
	}
}

func TestRequireSession_AnonymousAPIGets401(t *testing.T) {
	sessions := &stubSessions{session: domain.Session{State: domain.StateAnonymous}}

	c, _ := gateContext(t, "/admin/api/posts", "sid1")

	handler := RequireSession(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireSession_AnonymousBrowserRedirects(t *testing.T) {
	sessions := &stubSessions{session: domain.Session{State: domain.StateAnonymous}}

	c, rec := gateContext(t, "/dashboard", "sid1")

	handler := RequireSession(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != LoginPath {
		t.Fatalf("expected redirect to %s, got %s", LoginPath, loc)
	}
}

func TestRequireSession_NoCookieRedirects(t *testing.T) {
	sessions := &stubSessions{session: domain.Session{User: &domain.User{ID: "u1"}, State: domain.StateAuthenticated}}

	// No session ID at all: the resolver must not even be consulted.
	c, rec := gateContext(t, "/dashboard", "")

	handler := RequireSession(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec := gateContext(t, "/admin/api/users", "sid1")
	c.Set("session_user", &domain.User{ID: "u1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, called=%v code=%d", called, rec.Code)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	c, _ := gateContext(t, "/admin/api/users", "sid1")
	c.Set("session_user", &domain.User{ID: "u1", Role: domain.RoleUser})

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireRole_MissingUserIs401(t *testing.T) {
	c, _ := gateContext(t, "/admin/api/users", "sid1")

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
