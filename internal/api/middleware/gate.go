package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

const ctxKeyUser = "session_user"

// LoginPath is the login entry point unauthenticated viewers are sent to.
const LoginPath = "/login"

// RequireSession is the auth gate applied to every protected route. It
// resolves the session first: a redirect is never issued from an
// unresolved (loading) state, because that would bounce valid sessions
// during the window before the token store has been consulted. Resolved
// anonymous sessions are redirected to the login entry point; API
// requests get a 401 instead so fetch calls fail loudly rather than
// following the redirect.
func RequireSession(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := SessionID(c)
			if sid != "" {
				sess := sessions.Resolve(c.Request().Context(), sid)
				if sess.IsAuthenticated() {
					c.Set(ctxKeyUser, sess.User)
					return next(c)
				}
			}

			if isAPIRequest(c) {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return c.Redirect(http.StatusSeeOther, LoginPath)
		}
	}
}

// RequireRole gates admin-only operations. It must run after
// RequireSession.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := SessionUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// SessionUser returns the authenticated profile stored by RequireSession,
// or nil on ungated routes.
func SessionUser(c echo.Context) *domain.User {
	user, _ := c.Get(ctxKeyUser).(*domain.User)
	return user
}

func isAPIRequest(c echo.Context) bool {
	return strings.Contains(c.Request().URL.Path, "/api/")
}
