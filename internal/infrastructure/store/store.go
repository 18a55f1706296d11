// Package store implements the token store: durable persistence for the
// session credential and user profile across gateway restarts, backed by
// a ranked list of independent backends. Reads try backends in order and
// take the first hit; writes go to every backend. A single backend
// failing (Redis down, disk full) degrades resilience, not correctness.
package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/pressdeck/admin-gateway/internal/api/metrics"
	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// Store is the ranked-backend token store. The first backend is primary.
type Store struct {
	backends []ports.Backend
	log      zerolog.Logger
}

// New creates a Store over the given backends, ranked in argument order.
func New(log zerolog.Logger, backends ...ports.Backend) *Store {
	return &Store{backends: backends, log: log}
}

var _ ports.TokenStore = (*Store)(nil)

// Get returns the value from the highest-ranked backend holding the key.
// Backend errors are swallowed here: a failing backend is equivalent to a
// miss, and the next one in rank is consulted.
func (s *Store) Get(ctx context.Context, sid, key string) (string, bool) {
	for i, b := range s.backends {
		val, ok, err := b.Get(ctx, sid, key)
		if err != nil {
			metrics.TokenStoreErrorsTotal.WithLabelValues(b.Name(), "get").Inc()
			s.log.Warn().Err(err).Str("backend", b.Name()).Str("key", key).Msg("token store read failed")
			continue
		}
		if ok {
			if i > 0 {
				metrics.TokenStoreFallbacksTotal.WithLabelValues(b.Name()).Inc()
			}
			return val, true
		}
	}
	return "", false
}

// Set writes to every backend. It fails only when no backend accepted the
// write; partial success is fine since Get's fallback order covers it.
func (s *Store) Set(ctx context.Context, sid, key, value string) error {
	var lastErr error
	wrote := false
	for _, b := range s.backends {
		if err := b.Set(ctx, sid, key, value); err != nil {
			metrics.TokenStoreErrorsTotal.WithLabelValues(b.Name(), "set").Inc()
			s.log.Warn().Err(err).Str("backend", b.Name()).Str("key", key).Msg("token store write failed")
			lastErr = err
			continue
		}
		wrote = true
	}
	if !wrote {
		return lastErr
	}
	return nil
}

// Remove deletes the key from every backend unconditionally. Idempotent.
func (s *Store) Remove(ctx context.Context, sid, key string) {
	for _, b := range s.backends {
		if err := b.Remove(ctx, sid, key); err != nil {
			metrics.TokenStoreErrorsTotal.WithLabelValues(b.Name(), "remove").Inc()
			s.log.Warn().Err(err).Str("backend", b.Name()).Str("key", key).Msg("token store remove failed")
		}
	}
}

// SaveSession persists the credential and the serialized profile as one
// logical unit. If the profile write fails everywhere after the token
// write succeeded, the token is rolled back so the two never diverge.
func (s *Store) SaveSession(ctx context.Context, sid, token string, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.Set(ctx, sid, ports.KeyAuthToken, token); err != nil {
		return err
	}
	if err := s.Set(ctx, sid, ports.KeyUserProfile, string(raw)); err != nil {
		s.Remove(ctx, sid, ports.KeyAuthToken)
		return err
	}
	return nil
}

// LoadSession returns the stored credential and profile. Both must be
// present; a missing or malformed half clears the other so no stale
// profile survives without a credential, or vice versa.
func (s *Store) LoadSession(ctx context.Context, sid string) (string, *domain.User, bool) {
	token, okToken := s.Get(ctx, sid, ports.KeyAuthToken)
	raw, okUser := s.Get(ctx, sid, ports.KeyUserProfile)
	if !okToken || !okUser {
		if okToken || okUser {
			s.ClearSession(ctx, sid)
		}
		return "", nil, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		s.log.Warn().Str("sid", sid).Msg("stored profile malformed, clearing session")
		s.ClearSession(ctx, sid)
		return "", nil, false
	}
	return token, &user, true
}

// ClearSession removes both keys from every backend.
func (s *Store) ClearSession(ctx context.Context, sid string) {
	s.Remove(ctx, sid, ports.KeyAuthToken)
	s.Remove(ctx, sid, ports.KeyUserProfile)
}

// Credential reads the bearer token from the primary backend only. This
// is the upstream client's pre-request hook: the in-memory header may be
// gone after a restart while the stored credential is still valid.
func (s *Store) Credential(ctx context.Context, sid string) (string, bool) {
	if len(s.backends) == 0 {
		return "", false
	}
	val, ok, err := s.backends[0].Get(ctx, sid, ports.KeyAuthToken)
	if err != nil || !ok {
		return "", false
	}
	return val, true
}
