package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/assetdesk/inventory-api/internal/api/metrics"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// ReportHandler handles the aggregation report routes. Reports are pure
// reads; the only caller input is the low-stock threshold.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// AssetsByCategory handles GET /api/reports/assets-by-category.
//
// @Summary      Count assets grouped by type
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/reports/assets-by-category [get]
func (h *ReportHandler) AssetsByCategory(c echo.Context) error {
	metrics.ReportRequestsTotal.WithLabelValues("assets_by_category").Inc()

	groups, err := h.service.AssetsByType(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(toTypeCounts(groups)))
}

// AssetsByLocation handles GET /api/reports/assets-by-location.
//
// @Summary      Count assets grouped by location
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/reports/assets-by-location [get]
func (h *ReportHandler) AssetsByLocation(c echo.Context) error {
	metrics.ReportRequestsTotal.WithLabelValues("assets_by_location").Inc()

	groups, err := h.service.AssetsByLocation(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(toLocationCounts(groups)))
}

// DamagedAssets handles GET /api/reports/damaged-assets.
//
// @Summary      List damaged assets
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/reports/damaged-assets [get]
func (h *ReportHandler) DamagedAssets(c echo.Context) error {
	metrics.ReportRequestsTotal.WithLabelValues("damaged_assets").Inc()

	details, err := h.service.DamagedAssets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okCount(toAssetResponses(details), len(details)))
}

// LowStock handles GET /api/reports/low-stock?threshold=N. A missing or
// unparsable threshold falls back to the default of 5.
//
// @Summary      List asset types with low available stock
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        threshold  query     int  false  "Count threshold (default 5)"
// @Success      200        {object}  envelope
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c echo.Context) error {
	metrics.ReportRequestsTotal.WithLabelValues("low_stock").Inc()

	threshold, err := strconv.ParseInt(c.QueryParam("threshold"), 10, 64)
	if err != nil {
		threshold = 0 // service applies the default
	}

	groups, err := h.service.LowStock(c.Request().Context(), threshold)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(toTypeCounts(groups)))
}
