package cms

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

// ListPosts returns one page of posts. page is 1-based; limit caps the
// page size. Defaults mirror the admin UI (page 1, 10 per page).
func (c *Client) ListPosts(ctx context.Context, page, limit int) (*domain.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result domain.PostPage
	if err := c.do(ctx, http.MethodGet, "/posts", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+slug, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, http.MethodPost, "/posts", nil, in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, slug string, in domain.PostInput) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, http.MethodPut, "/posts/"+slug, nil, in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+slug, nil, nil, nil)
}
