package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// TaxonomyHandler forwards category and tag management to the upstream
// CMS. Both are slug-addressed and share the same shape of operations,
// so they live in one handler.
type TaxonomyHandler struct {
	categories ports.CategoriesAPI
	tags       ports.TagsAPI
}

func NewTaxonomyHandler(categories ports.CategoriesAPI, tags ports.TagsAPI) *TaxonomyHandler {
	return &TaxonomyHandler{categories: categories, tags: tags}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

type tagRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

// --- Categories ---

func (h *TaxonomyHandler) ListCategories(c echo.Context) error {
	categories, err := h.categories.ListCategories(requestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *TaxonomyHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categories.CreateCategory(requestContext(c), domain.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *TaxonomyHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categories.UpdateCategory(requestContext(c), c.Param("slug"), domain.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *TaxonomyHandler) DeleteCategory(c echo.Context) error {
	if err := h.categories.DeleteCategory(requestContext(c), c.Param("slug")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Tags ---

func (h *TaxonomyHandler) ListTags(c echo.Context) error {
	tags, err := h.tags.ListTags(requestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

func (h *TaxonomyHandler) CreateTag(c echo.Context) error {
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, err := h.tags.CreateTag(requestContext(c), domain.TagInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tag)
}

func (h *TaxonomyHandler) UpdateTag(c echo.Context) error {
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, err := h.tags.UpdateTag(requestContext(c), c.Param("slug"), domain.TagInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *TaxonomyHandler) DeleteTag(c echo.Context) error {
	if err := h.tags.DeleteTag(requestContext(c), c.Param("slug")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
