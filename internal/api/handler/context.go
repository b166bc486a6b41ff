package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both values must be
// present, since their presence proves the middleware ran.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
