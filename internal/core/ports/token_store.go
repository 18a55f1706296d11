package ports

import (
	"context"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

// Keys under which session state is persisted. Both are always written
// and cleared together so a credential never outlives its profile.
const (
	KeyAuthToken   = "authToken"
	KeyUserProfile = "user"
)

// Backend is a single persistence surface for session state, keyed by
// (session ID, key). Implementations: Redis (primary, no expiry) and a
// local file cache (secondary, finite expiry).
type Backend interface {
	// Get returns the stored value and whether it was present.
	Get(ctx context.Context, sid, key string) (string, bool, error)

	// Set stores the value. Expiry policy is the backend's own concern.
	Set(ctx context.Context, sid, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, sid, key string) error

	// Name identifies the backend in logs and metrics.
	Name() string
}

// TokenStore persists the bearer credential and the serialized user
// profile across gateway restarts, reading from a ranked list of
// backends and writing to all of them. Individual backend failures are
// swallowed; the fallback read order resolves any inconsistency.
type TokenStore interface {
	Get(ctx context.Context, sid, key string) (string, bool)
	Set(ctx context.Context, sid, key, value string) error
	Remove(ctx context.Context, sid, key string)

	// SaveSession writes credential and profile together. It fails only
	// when no backend accepted the write.
	SaveSession(ctx context.Context, sid, token string, user *domain.User) error

	// LoadSession returns the stored credential and profile, or ok=false
	// when either is missing or the profile is malformed (in which case
	// both keys are cleared).
	LoadSession(ctx context.Context, sid string) (token string, user *domain.User, ok bool)

	// ClearSession removes both keys from every backend. Never fails.
	ClearSession(ctx context.Context, sid string)

	// Credential reads the bearer token from the primary backend only.
	// Used by the upstream client's request hook.
	Credential(ctx context.Context, sid string) (string, bool)
}
