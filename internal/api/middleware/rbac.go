package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetdesk/inventory-api/internal/api/metrics"
)

// RBAC enforces a route-level allowed-role set. It must run after Auth,
// which puts the verified role on the context. Denial has no side effects
// beyond the 403 response.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
