package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/assetdesk/inventory-api/internal/api/metrics"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the caller's identity into the
// request context. Every failure mode answers 401 with the same generic
// message.
//
// The role is taken from the verified token, not re-fetched from the user
// store: a role changed after issuance stays valid until the token expires.
// That staleness window is the price of skipping a database round-trip on
// every request.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
