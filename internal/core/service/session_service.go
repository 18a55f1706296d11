package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pressdeck/admin-gateway/internal/api/metrics"
	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// SessionService owns all session state. One instance serves every
// browser session; state is keyed by the signed-cookie session ID. It is
// the only writer: login, logout, the first resolution, and the upstream
// 401 signal (funneled through HandleUnauthorized → Logout) all converge
// here, so overlapping calls for one session settle on a single terminal
// state.
type SessionService struct {
	store ports.TokenStore
	auth  ports.AuthAPI
	creds ports.CredentialConfigurer
	log   zerolog.Logger

	mu       sync.Mutex
	sessions map[string]domain.Session
}

// NewSessionService wires the token store, the upstream login endpoint,
// and the client's credential header together.
func NewSessionService(store ports.TokenStore, auth ports.AuthAPI, creds ports.CredentialConfigurer, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:    store,
		auth:     auth,
		creds:    creds,
		log:      log,
		sessions: make(map[string]domain.Session),
	}
}

var _ ports.SessionService = (*SessionService)(nil)

// Resolve returns the current session for sid. The first call per
// session ID consults the token store: credential and profile both
// present means authenticated (and the upstream client is configured
// with the stored credential); anything else means anonymous. The
// loading state ends here, exactly once, and never returns.
func (s *SessionService) Resolve(ctx context.Context, sid string) domain.Session {
	if sid == "" {
		return domain.Session{State: domain.StateAnonymous}
	}

	s.mu.Lock()
	if sess, ok := s.sessions[sid]; ok {
		s.mu.Unlock()
		return sess
	}
	s.mu.Unlock()

	// First contact: consult the store outside the lock. Storage reads
	// may block on IO and other sessions must not wait on them.
	token, user, ok := s.store.LoadSession(ctx, sid)

	sess := domain.Session{State: domain.StateAnonymous}
	if ok {
		s.creds.SetCredential(sid, token)
		sess = domain.Session{User: user, State: domain.StateAuthenticated}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent Login/Logout may have resolved this session already;
	// the committed state wins over our read.
	if existing, exists := s.sessions[sid]; exists {
		return existing
	}
	s.sessions[sid] = sess
	return sess
}

// Login authenticates against the upstream CMS. On success the fresh
// credential and the assembled profile are committed together: client
// header, token store, and in-memory state all change, or none do. The
// email is taken from the input because the CMS does not echo it back.
func (s *SessionService) Login(ctx context.Context, sid, email, password string) (*domain.User, error) {
	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	user := &domain.User{
		ID:       result.UserID,
		Username: result.Username,
		Email:    email,
		Role:     result.Role,
	}

	if err := s.store.SaveSession(ctx, sid, result.Token, user); err != nil {
		// Total storage outage: the session would not survive a reload,
		// so treat the login as failed and commit nothing.
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.log.Error().Err(err).Str("sid", sid).Msg("failed to persist session")
		return nil, err
	}

	s.creds.SetCredential(sid, result.Token)

	s.mu.Lock()
	s.sessions[sid] = domain.Session{User: user, State: domain.StateAuthenticated}
	s.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return user, nil
}

// Logout tears the session down: client credential, both token store
// keys, and in-memory state. Unconditional and idempotent: logging out
// twice, or logging out a session that never logged in, is a no-op.
func (s *SessionService) Logout(ctx context.Context, sid string) {
	if sid == "" {
		return
	}

	s.creds.ClearCredential(sid)
	s.store.ClearSession(ctx, sid)

	s.mu.Lock()
	s.sessions[sid] = domain.Session{State: domain.StateAnonymous}
	s.mu.Unlock()
}

// HandleUnauthorized is the upstream client's unauthorized hook: a 401
// anywhere terminates the session. It funnels into Logout so that the
// HTTP layer and the session layer can never disagree about what a dead
// credential means; the redirect happens on the next gated request.
func (s *SessionService) HandleUnauthorized(ctx context.Context, sid string) {
	metrics.ForcedLogoutsTotal.Inc()
	s.log.Warn().Str("sid", sid).Msg("upstream rejected credential, terminating session")
	s.Logout(ctx, sid)
}
