package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

// UsersHandler forwards user administration to the upstream CMS. All of
// its routes sit behind the admin role gate.
type UsersHandler struct {
	users ports.UsersAPI
}

func NewUsersHandler(users ports.UsersAPI) *UsersHandler {
	return &UsersHandler{users: users}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

func (h *UsersHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(requestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UsersHandler) Get(c echo.Context) error {
	user, err := h.users.GetUser(requestContext(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateRole handles PUT /admin/api/users/:id/role.
func (h *UsersHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateUserRole(requestContext(c), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UsersHandler) Delete(c echo.Context) error {
	if err := h.users.DeleteUser(requestContext(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
