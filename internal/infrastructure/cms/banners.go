package cms

import (
	"context"
	"net/http"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
)

func (c *Client) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner
	if err := c.do(ctx, http.MethodGet, "/banners", nil, nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (c *Client) CreateBanner(ctx context.Context, in domain.BannerInput) (*domain.Banner, error) {
	var banner domain.Banner
	if err := c.do(ctx, http.MethodPost, "/banners", nil, in, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (c *Client) UpdateBanner(ctx context.Context, id string, in domain.BannerInput) (*domain.Banner, error) {
	var banner domain.Banner
	if err := c.do(ctx, http.MethodPut, "/banners/"+id, nil, in, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/banners/"+id, nil, nil, nil)
}
