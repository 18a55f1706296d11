package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// PostsHandler forwards post management calls to the upstream CMS.
type PostsHandler struct {
	posts ports.PostsAPI
}

func NewPostsHandler(posts ports.PostsAPI) *PostsHandler {
	return &PostsHandler{posts: posts}
}

type postRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     string   `json:"excerpt"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
	Thumbnail   string   `json:"thumbnail"`
}

func (r postRequest) toInput() domain.PostInput {
	return domain.PostInput{
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		Categories:  r.Categories,
		Tags:        r.Tags,
		IsPublished: r.IsPublished,
		Thumbnail:   r.Thumbnail,
	}
}

// List handles GET /admin/api/posts?page=&limit=.
func (h *PostsHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.posts.ListPosts(requestContext(c), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get handles GET /admin/api/posts/:slug.
func (h *PostsHandler) Get(c echo.Context) error {
	post, err := h.posts.GetPost(requestContext(c), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /admin/api/posts.
func (h *PostsHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.posts.CreatePost(requestContext(c), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /admin/api/posts/:slug.
func (h *PostsHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.posts.UpdatePost(requestContext(c), c.Param("slug"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /admin/api/posts/:slug.
func (h *PostsHandler) Delete(c echo.Context) error {
	if err := h.posts.DeletePost(requestContext(c), c.Param("slug")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
