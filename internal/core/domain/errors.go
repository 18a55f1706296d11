package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the upstream CMS rejects the
	// session's credential (HTTP 401). Receiving it means the session
	// has already been terminated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by login with a wrong email/password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when the upstream CMS reports a missing resource.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("access forbidden")
)

// UpstreamError carries a non-2xx upstream response that is neither a 401
// nor a 404. The gateway passes it through to the caller untouched; the
// admin UI owns the presentation of validation and server failures.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}
