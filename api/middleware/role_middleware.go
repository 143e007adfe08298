package middleware

import (
	"net/http"

	"meallink/internal/entity"

	"github.com/labstack/echo/v4"
)

// RequireRoles passes when the caller holds at least one of the allowed
// roles. Users may hold several roles at once.
func RequireRoles(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := RolesFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			for _, role := range allowed {
				for _, current := range held {
					if current == role {
						return next(c)
					}
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}
