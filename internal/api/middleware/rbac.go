package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/core/domain"
)

// RequireRoles is the authorization decision point: it denies the request
// unless the attached identity holds at least one of the required roles.
// Anonymous requests get 401, authenticated but under-privileged ones 403.
// Public endpoints simply do not mount this middleware.
func RequireRoles(required ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(required))
	for _, r := range required {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(CtxRoles).([]domain.Role)
			if len(roles) == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, r := range roles {
				if _, ok := allowed[r]; ok {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
		}
	}
}
