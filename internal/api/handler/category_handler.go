package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create handles POST /api/categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ok(category))
}

// List handles GET /api/categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okCount(categories, len(categories)))
}

// Get handles GET /api/categories/:id.
//
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(category))
}

// Update handles PUT /api/categories/:id.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Category id"
// @Param        body  body      updateCategoryRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	category, err := h.service.Update(c.Request().Context(), ports.UpdateCategoryInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(category))
}

// Delete handles DELETE /api/categories/:id.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(map[string]any{}))
}
