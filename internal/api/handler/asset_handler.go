package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetdesk/inventory-api/internal/api/metrics"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// AssetHandler handles HTTP requests for asset operations. It assumes the
// Auth and RBAC middleware already ran; the update path additionally relies
// on the service-side field sanitizer.
type AssetHandler struct {
	service ports.AssetService
}

func NewAssetHandler(service ports.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

// Create handles POST /api/assets.
//
// @Summary      Create a new asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAssetRequest  true  "Asset details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c echo.Context) error {
	var req createAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	purchaseDate, err := parseDateParam(req.PurchaseDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "purchase_date must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}

	detail, err := h.service.Create(c.Request().Context(), ports.CreateAssetInput{
		AssetName:    req.AssetName,
		AssetType:    req.AssetType,
		SerialNumber: req.SerialNumber,
		Brand:        req.Brand,
		Model:        req.Model,
		PurchaseDate: purchaseDate,
		Condition:    req.Condition,
		Status:       req.Status,
		AssignedTo:   req.AssignedTo,
		Location:     req.Location,
	})
	if err != nil {
		return err
	}

	metrics.AssetsCreatedTotal.WithLabelValues(detail.Asset.AssetType).Inc()
	return c.JSON(http.StatusCreated, ok(toAssetResponse(*detail)))
}

// List handles GET /api/assets.
//
// @Summary      List all assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/assets [get]
func (h *AssetHandler) List(c echo.Context) error {
	details, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okCount(toAssetResponses(details), len(details)))
}

// Get handles GET /api/assets/:id.
//
// @Summary      Get a single asset
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Asset id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(toAssetResponse(*detail)))
}

// Update handles PUT /api/assets/:id. The payload is a field-name → value
// mapping; fields the caller's role may not write are silently dropped
// before the merge.
//
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Asset id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Update(c.Request().Context(), ports.UpdateAssetInput{
		ID:     c.Param("id"),
		Role:   role,
		Fields: fields,
	})
	if err != nil {
		return err
	}

	metrics.AssetUpdatesTotal.WithLabelValues(role).Inc()
	return c.JSON(http.StatusOK, ok(toAssetResponse(*detail)))
}

// Delete handles DELETE /api/assets/:id. Deleting an absent id answers 404,
// including on repeat deletes.
//
// @Summary      Delete an asset
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Asset id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(map[string]any{}))
}
