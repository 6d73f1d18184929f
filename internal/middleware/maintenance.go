package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Maintenance returns 503 on public routes while maintenance mode
// is on. Admin routes are never gated so the mode can be switched
// back off.
func Maintenance(check func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if check(c) {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{
					"error": "the site is under maintenance, please try again later",
				})
			}
			return next(c)
		}
	}
}
