package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/core/domain"
)

func runRBAC(t *testing.T, roles []domain.Role, required ...domain.Role) (int, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set(CtxRoles, roles)
	}

	handler := RequireRoles(required...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	if err == nil {
		return rec.Code, nil
	}
	return 0, err
}

func TestRequireRoles_AnonymousDenied(t *testing.T) {
	_, err := runRBAC(t, nil, domain.RoleAdmin)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestRequireRoles_UserDeniedAdminRoute(t *testing.T) {
	_, err := runRBAC(t, []domain.Role{domain.RoleUser}, domain.RoleAdmin)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", he.Code)
	}
}

func TestRequireRoles_AdminAllowedOnMixedRoute(t *testing.T) {
	code, err := runRBAC(t, []domain.Role{domain.RoleAdmin}, domain.RoleUser, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRequireRoles_UserAllowedOnMixedRoute(t *testing.T) {
	code, err := runRBAC(t, []domain.Role{domain.RoleUser}, domain.RoleUser, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}
