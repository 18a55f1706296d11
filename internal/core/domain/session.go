package domain

// SessionState is the lifecycle state of a browser session.
type SessionState string

const (
	// StateInitializing means the token store has not been consulted yet.
	StateInitializing SessionState = "initializing"
	// StateAuthenticated means a credential and profile are attached.
	StateAuthenticated SessionState = "authenticated"
	// StateAnonymous means no valid credential exists.
	StateAnonymous SessionState = "anonymous"
)

// Session is the in-memory view of one browser session. It is owned
// exclusively by the session service; everything else reads copies.
type Session struct {
	User  *User
	State SessionState
}

// IsAuthenticated is always derived from the presence of a profile,
// never stored separately.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

// IsLoading is true only before the first token-store consultation.
func (s *Session) IsLoading() bool {
	return s == nil || s.State == StateInitializing
}
