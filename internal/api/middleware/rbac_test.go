package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

func contextWithRole(role domain.Role) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(identityKey, &domain.User{ID: "user_1", Role: role, Status: domain.UserActive})
	return c
}

func TestRBAC_Allows(t *testing.T) {
	c := contextWithRole(domain.RoleAdmin)

	called := false
	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRBAC_AllowsAnyOfSet(t *testing.T) {
	c := contextWithRole(domain.RoleRecruiter)

	handler := RBAC(domain.RoleAdmin, domain.RoleRecruiter)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestRBAC_Forbids(t *testing.T) {
	c := contextWithRole(domain.RoleJobseeker)

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	expectHTTPError(t, handler(c), http.StatusForbidden, "You do not have permission to access this resource")
}

func TestRBAC_NoIdentity(t *testing.T) {
	// A request that skipped Auth entirely is unauthenticated, not
	// forbidden.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	expectHTTPError(t, handler(c), http.StatusUnauthorized, "You are not authenticated")
}
