package cms

import (
	"context"
	"net/http"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

// Categories and tags share the same slug-keyed CRUD shape.

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, slug string, in domain.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+slug, nil, in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+slug, nil, nil, nil)
}

func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) CreateTag(ctx context.Context, in domain.TagInput) (*domain.Tag, error) {
	var tag domain.Tag
	if err := c.do(ctx, http.MethodPost, "/tags", nil, in, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) UpdateTag(ctx context.Context, slug string, in domain.TagInput) (*domain.Tag, error) {
	var tag domain.Tag
	if err := c.do(ctx, http.MethodPut, "/tags/"+slug, nil, in, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) DeleteTag(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, "/tags/"+slug, nil, nil, nil)
}
