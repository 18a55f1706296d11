package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// stubTokenStore is an in-memory ports.TokenStore tracking session saves.
type stubTokenStore struct {
	mu      sync.Mutex
	tokens  map[string]string
	users   map[string]*domain.User
	saveErr error
	saved   int
	cleared int
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{
		tokens: make(map[string]string),
		users:  make(map[string]*domain.User),
	}
}

func (s *stubTokenStore) Get(_ context.Context, sid, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == ports.KeyAuthToken {
		tok, ok := s.tokens[sid]
		return tok, ok
	}
	return "", false
}

func (s *stubTokenStore) Set(_ context.Context, sid, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == ports.KeyAuthToken {
		s.tokens[sid] = value
	}
	return nil
}

func (s *stubTokenStore) Remove(_ context.Context, sid, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == ports.KeyAuthToken {
		delete(s.tokens, sid)
	}
}

func (s *stubTokenStore) SaveSession(_ context.Context, sid, token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.tokens[sid] = token
	s.users[sid] = user
	s.saved++
	return nil
}

func (s *stubTokenStore) LoadSession(_ context.Context, sid string) (string, *domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, okT := s.tokens[sid]
	user, okU := s.users[sid]
	if !okT || !okU {
		return "", nil, false
	}
	return tok, user, true
}

func (s *stubTokenStore) ClearSession(_ context.Context, sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	delete(s.users, sid)
	s.cleared++
}

func (s *stubTokenStore) Credential(_ context.Context, sid string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, ok := s.tokens[sid]
	return tok, ok
}

type stubAuth struct {
	loginFn func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

// stubCreds records credential changes pushed to the upstream client.
type stubCreds struct {
	mu      sync.Mutex
	tokens  map[string]string
	cleared int
}

func newStubCreds() *stubCreds {
	return &stubCreds{tokens: make(map[string]string)}
}

func (s *stubCreds) SetCredential(sid, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sid] = token
}

func (s *stubCreds) ClearCredential(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	s.cleared++
}

func (s *stubCreds) get(sid string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, ok := s.tokens[sid]
	return tok, ok
}

func newTestService(store *stubTokenStore, auth *stubAuth, creds *stubCreds) *SessionService {
	if auth == nil {
		auth = &stubAuth{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, errors.New("login not expected")
		}}
	}
	return NewSessionService(store, auth, creds, zerolog.Nop())
}

func TestResolve_StoredSessionAuthenticates(t *testing.T) {
	ctx := context.Background()
	store := newStubTokenStore()
	store.tokens["sid1"] = "tok-123"
	store.users["sid1"] = &domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin}
	creds := newStubCreds()

	svc := newTestService(store, nil, creds)
	sess := svc.Resolve(ctx, "sid1")

	if sess.IsLoading() {
		t.Fatalf("resolution must end the loading state")
	}
	if !sess.IsAuthenticated() {
		t.Fatalf("stored credential and profile must authenticate")
	}
	if sess.User.ID != "u1" {
		t.Fatalf("unexpected user %+v", sess.User)
	}

	// The upstream client was handed the stored credential.
	if tok, ok := creds.get("sid1"); !ok || tok != "tok-123" {
		t.Fatalf("client credential not configured, got %q (ok=%v)", tok, ok)
	}
}

func TestResolve_EmptyStoreIsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := newStubTokenStore()
	creds := newStubCreds()

	svc := newTestService(store, nil, creds)
	sess := svc.Resolve(ctx, "sid1")

	if sess.IsLoading() || sess.IsAuthenticated() {
		t.Fatalf("expected resolved anonymous session, got %+v", sess)
	}
	if sess.State != domain.StateAnonymous {
		t.Fatalf("unexpected state %q", sess.State)
	}
}

func TestResolve_CachedAfterFirstContact(t *testing.T) {
	ctx := context.Background()
	store := newStubTokenStore()
	store.tokens["sid1"] = "tok"
	store.users["sid1"] = &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}

	svc := newTestService(store, nil, newStubCreds())
	first := svc.Resolve(ctx, "sid1")

	// Wipe the store: the cached resolution must still hold.
	store.ClearSession(ctx, "sid1")
	second := svc.Resolve(ctx, "sid1")

	if !second.IsAuthenticated() || second.User.ID != first.User.ID {
		t.Fatalf("expected cached session, got %+v", second)
	}
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	store := newStubTokenStore()
	creds := newStubCreds()
	auth := &stubAuth{loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
		if email != "alice@example.com" || password != "secret" {
			t.Fatalf("unexpected credentials %s/%s", email, password)
		}
		return &ports.LoginResult{Token: "tok-123", UserID: "u1", Username: "alice", Role: domain.RoleAdmin}, nil
	}}

	svc := newTestService(store, auth, creds)
	user, err := svc.Login(ctx, "sid1", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// The profile email comes from the login input, not the response.
	if user.ID != "u1" || user.Email != "alice@example.com" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user %+v", user)
	}

	if store.saved != 1 {
		t.Fatalf("expected one persisted session, got %d", store.saved)
	}
	if tok, ok := creds.get("sid1"); !ok || tok != "tok-123" {
		t.Fatalf("client credential not configured")
	}

	sess := svc.Resolve(ctx, "sid1")
	if !sess.IsAuthenticated() {
		t.Fatalf("session not authenticated after login")
	}
}

func TestLogin_InvalidCredentialsLeaveStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := newStubTokenStore()
	creds := newStubCreds()
	auth := &stubAuth{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return nil, domain.ErrInvalidCredentials
	}}

	svc := newTestService(store, auth, creds)
	_, err := svc.Login(ctx, "sid1", "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if store.saved != 0 {
		t.Fatalf("nothing should have been persisted")
	}
	if _, ok := creds.get("sid1"); ok {
		t.Fatalf("no credential should have been configured")
	}
	if sess := svc.Resolve(ctx, "sid1"); sess.IsAuthenticated() {
		t.Fatalf("session must stay anonymous after failed login")
	}
}

func TestLogin_StorageOutageFailsLogin(t *testing.T) {
	ctx := context.Background()
	store := newStubTokenStore()
	store.saveErr = errors.New("all backends down")
	creds := newStubCreds()
	auth := &stubAuth{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return &ports.LoginResult{Token: "tok", UserID: "u1", Username: "alice", Role: domain.RoleUser}, nil
	}}

	svc := newTestService(store, auth, creds)
	if _, err := svc.Login(ctx, "sid1", "alice@example.com", "secret"); err == nil {
		t.Fatalf("expected login failure on storage outage")
	}
	if _, ok := creds.get("sid1"); ok {
		t.Fatalf("no credential should have been configured")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newStubTokenStore()
	creds := newStubCreds()
	auth := &stubAuth{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return &ports.LoginResult{Token: "tok", UserID: "u1", Username: "alice", Role: domain.RoleUser}, nil
	}}

	svc := newTestService(store, auth, creds)
	if _, err := svc.Login(ctx, "sid1", "alice@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.Logout(ctx, "sid1")
	svc.Logout(ctx, "sid1")
	// Logging out a session that never logged in is also a no-op.
	svc.Logout(ctx, "sid-unknown")

	if sess := svc.Resolve(ctx, "sid1"); sess.IsAuthenticated() {
		t.Fatalf("session still authenticated after logout")
	}
	if _, ok := creds.get("sid1"); ok {
		t.Fatalf("client credential survived logout")
	}
	if _, _, ok := store.LoadSession(ctx, "sid1"); ok {
		t.Fatalf("stored session survived logout")
	}
}

func TestHandleUnauthorized_TerminatesSession(t *testing.T) {
	ctx := context.Background()
	store := newStubTokenStore()
	creds := newStubCreds()
	auth := &stubAuth{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return &ports.LoginResult{Token: "tok", UserID: "u1", Username: "alice", Role: domain.RoleUser}, nil
	}}

	svc := newTestService(store, auth, creds)
	if _, err := svc.Login(ctx, "sid1", "alice@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.HandleUnauthorized(ctx, "sid1")

	sess := svc.Resolve(ctx, "sid1")
	if sess.IsAuthenticated() {
		t.Fatalf("session must be terminated after an upstream rejection")
	}
	if sess.State != domain.StateAnonymous {
		t.Fatalf("unexpected state %q", sess.State)
	}
	if _, _, ok := store.LoadSession(ctx, "sid1"); ok {
		t.Fatalf("stored session survived the rejection")
	}
}
