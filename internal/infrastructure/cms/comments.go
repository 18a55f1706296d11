package cms

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

// ListComments returns comments for moderation, optionally scoped to one
// post.
func (c *Client) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	var query url.Values
	if postID != "" {
		query = url.Values{"postId": {postID}}
	}

	var comments []domain.Comment
	if err := c.do(ctx, http.MethodGet, "/comments", query, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) ApproveComment(ctx context.Context, id string) (*domain.Comment, error) {
	var comment domain.Comment
	if err := c.do(ctx, http.MethodPatch, "/comments/"+id+"/approve", nil, nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+id, nil, nil, nil)
}
