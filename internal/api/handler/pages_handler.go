package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// PagesHandler forwards standalone page management to the upstream CMS.
type PagesHandler struct {
	pages ports.PagesAPI
}

func NewPagesHandler(pages ports.PagesAPI) *PagesHandler {
	return &PagesHandler{pages: pages}
}

type pageRequest struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsPublished bool   `json:"isPublished"`
	Thumbnail   string `json:"thumbnail"`
}

func (r pageRequest) toInput() domain.PageInput {
	return domain.PageInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Content:     r.Content,
		IsPublished: r.IsPublished,
		Thumbnail:   r.Thumbnail,
	}
}

func (h *PagesHandler) List(c echo.Context) error {
	pages, err := h.pages.ListPages(requestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

func (h *PagesHandler) Get(c echo.Context) error {
	page, err := h.pages.GetPage(requestContext(c), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *PagesHandler) Create(c echo.Context) error {
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := h.pages.CreatePage(requestContext(c), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, page)
}

func (h *PagesHandler) Update(c echo.Context) error {
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := h.pages.UpdatePage(requestContext(c), c.Param("slug"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *PagesHandler) Delete(c echo.Context) error {
	if err := h.pages.DeletePage(requestContext(c), c.Param("slug")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
