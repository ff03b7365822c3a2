package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancer-toolkit/api/internal/api/middleware"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// ctxClaims extracts the verified claims injected by the Auth middleware and
// fast-fails before any service call: a non-empty user id proves the
// middleware ran. Handlers never read raw context keys directly.
func ctxClaims(c echo.Context) (ports.Claims, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return ports.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get(middleware.CtxRole).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)

	return ports.Claims{UserID: userID, Role: role, Email: email}, nil
}
