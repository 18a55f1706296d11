package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// CommentsHandler forwards moderation calls to the upstream CMS. The
// admin UI only lists, approves, and deletes comments; authoring happens
// on the public site.
type CommentsHandler struct {
	comments ports.CommentsAPI
}

func NewCommentsHandler(comments ports.CommentsAPI) *CommentsHandler {
	return &CommentsHandler{comments: comments}
}

// List handles GET /admin/api/comments?postId=.
func (h *CommentsHandler) List(c echo.Context) error {
	comments, err := h.comments.ListComments(requestContext(c), c.QueryParam("postId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Approve handles PATCH /admin/api/comments/:id/approve.
func (h *CommentsHandler) Approve(c echo.Context) error {
	comment, err := h.comments.ApproveComment(requestContext(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /admin/api/comments/:id.
func (h *CommentsHandler) Delete(c echo.Context) error {
	if err := h.comments.DeleteComment(requestContext(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
