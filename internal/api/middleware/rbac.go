package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// RBAC enforces that the authenticated identity's role is in the allowed
// set. Auth must run first; a request with no identity in context is
// rejected as unauthenticated (401) rather than forbidden, keeping the
// 401/403 taxonomy precise for clients. The role is read from the live
// identity, never from token claims.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "You are not authenticated")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to access this resource")
			}
			return next(c)
		}
	}
}
