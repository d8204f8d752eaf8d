package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/api/middleware"
	"github.com/elibrary/library-system/internal/core/domain"
)

// currentUser returns the identity the authentication gate attached to this
// request. Handlers mounted behind a role check can rely on it being set;
// the error path exists for routes a misconfigured router leaves unguarded.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.CtxIdentity).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user, nil
}
