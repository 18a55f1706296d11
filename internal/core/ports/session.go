package ports

import (
	"context"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

// SessionService is the sole entry point for session state. All other
// components request transitions here; none mutate session fields.
type SessionService interface {
	// Resolve returns the session for sid, consulting the token store on
	// first contact. After Resolve returns, the session is never loading.
	Resolve(ctx context.Context, sid string) domain.Session

	// Login authenticates against the upstream CMS. On success the
	// credential and profile are committed together; on any failure no
	// state changes and the error is returned for the UI to display.
	Login(ctx context.Context, sid, email, password string) (*domain.User, error)

	// Logout tears the session down unconditionally. Calling it on an
	// anonymous or unknown session is a no-op.
	Logout(ctx context.Context, sid string)
}
