package cms

import (
	"context"
	"net/http"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserRole is the role-only update endpoint; the CMS rejects any
// other profile mutation through the admin surface.
func (c *Client) UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	var user domain.User
	body := map[string]string{"role": role}
	if err := c.do(ctx, http.MethodPut, "/users/"+id+"/role", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil, nil)
}
