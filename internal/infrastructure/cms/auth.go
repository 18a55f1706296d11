package cms

import (
	"context"
	"errors"
	"net/http"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the CMS. It is the one unauthenticated
// call: no credential is attached because none exists yet, and a 401
// here means bad credentials, not a dead session.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var result ports.LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &result)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return &result, nil
}
