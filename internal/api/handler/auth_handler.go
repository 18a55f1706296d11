package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/pressdeck/admin-gateway/internal/api/middleware"
	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// AuthHandler serves the session endpoints: login, logout, and the
// current-session probe the admin UI calls on first paint.
type AuthHandler struct {
	sessions     ports.SessionService
	cookies      *mw.Cookies
	assetBaseURL string
}

func NewAuthHandler(sessions ports.SessionService, cookies *mw.Cookies, assetBaseURL string) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookies: cookies, assetBaseURL: assetBaseURL}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	AssetBaseURL  string       `json:"assetBaseUrl"`
}

// Login handles POST /login. Authentication runs under a fresh session
// ID before anything touches the browser: a failed attempt commits no
// state and leaves any existing session cookie exactly as it was. On
// success the new cookie is issued and the session the request carried,
// if any, is torn down so a re-login never strands its predecessor.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prev := mw.SessionID(c)
	sid := mw.NewSessionID()

	user, err := h.sessions.Login(c.Request().Context(), sid, req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := h.cookies.Issue(c, sid); err != nil {
		// The browser never got the cookie, so the session is unreachable.
		h.sessions.Logout(c.Request().Context(), sid)
		return err
	}

	if prev != "" && prev != sid {
		h.sessions.Logout(c.Request().Context(), prev)
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		User:          user,
		AssetBaseURL:  h.assetBaseURL,
	})
}

// Logout handles POST /logout. Always succeeds: logging out an already
// anonymous or unknown session is a no-op.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := mw.SessionID(c); sid != "" {
		h.sessions.Logout(c.Request().Context(), sid)
	}
	h.cookies.Clear(c)
	return c.NoContent(http.StatusNoContent)
}

// Session handles GET /session. It reports the resolved session without
// gating, so the UI can decide what to render before making any
// protected call. The asset base URL rides along because the UI needs
// it to build thumbnail links.
func (h *AuthHandler) Session(c echo.Context) error {
	sid := mw.SessionID(c)
	if sid == "" {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false, AssetBaseURL: h.assetBaseURL})
	}

	sess := h.sessions.Resolve(c.Request().Context(), sid)
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: sess.IsAuthenticated(),
		User:          sess.User,
		AssetBaseURL:  h.assetBaseURL,
	})
}
