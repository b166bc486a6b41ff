package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// UserHandler handles the admin-only user management routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okCount(toUserResponses(users), len(users)))
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(toUserResponse(user)))
}

// UpdateRole handles PUT /api/users/:id. Only the role is mutable through
// this route. The new role takes effect on the user's next token; tokens
// already issued keep their embedded role until expiry.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "User id"
// @Param        body  body      updateUserRoleRequest  true  "New role"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(toUserResponse(user)))
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(map[string]any{}))
}
