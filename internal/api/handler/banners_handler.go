package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// BannersHandler forwards banner management to the upstream CMS.
type BannersHandler struct {
	banners ports.BannersAPI
}

func NewBannersHandler(banners ports.BannersAPI) *BannersHandler {
	return &BannersHandler{banners: banners}
}

type bannerRequest struct {
	Title    string `json:"title" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
	Link     string `json:"link"`
	IsActive bool   `json:"isActive"`
}

func (r bannerRequest) toInput() domain.BannerInput {
	return domain.BannerInput{
		Title:    r.Title,
		ImageURL: r.ImageURL,
		Link:     r.Link,
		IsActive: r.IsActive,
	}
}

func (h *BannersHandler) List(c echo.Context) error {
	banners, err := h.banners.ListBanners(requestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, banners)
}

func (h *BannersHandler) Create(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	banner, err := h.banners.CreateBanner(requestContext(c), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, banner)
}

func (h *BannersHandler) Update(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	banner, err := h.banners.UpdateBanner(requestContext(c), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, banner)
}

func (h *BannersHandler) Delete(c echo.Context) error {
	if err := h.banners.DeleteBanner(requestContext(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
