package cms

import (
	"context"
	"net/http"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

func (c *Client) ListPages(ctx context.Context) ([]domain.Page, error) {
	var pages []domain.Page
	if err := c.do(ctx, http.MethodGet, "/pages", nil, nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (c *Client) GetPage(ctx context.Context, slug string) (*domain.Page, error) {
	var page domain.Page
	if err := c.do(ctx, http.MethodGet, "/pages/"+slug, nil, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreatePage(ctx context.Context, in domain.PageInput) (*domain.Page, error) {
	var page domain.Page
	if err := c.do(ctx, http.MethodPost, "/pages", nil, in, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdatePage(ctx context.Context, slug string, in domain.PageInput) (*domain.Page, error) {
	var page domain.Page
	if err := c.do(ctx, http.MethodPut, "/pages/"+slug, nil, in, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) DeletePage(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, "/pages/"+slug, nil, nil, nil)
}
