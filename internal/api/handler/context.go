package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	mw "github.com/pressdeck/admin-gateway/internal/api/middleware"
	"github.com/pressdeck/admin-gateway/internal/infrastructure/cms"
)

// requestContext returns the request context tagged with the browser
// session ID so the upstream client attaches the right credential.
func requestContext(c echo.Context) context.Context {
	return cms.WithSessionID(c.Request().Context(), mw.SessionID(c))
}
