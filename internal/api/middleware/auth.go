package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/api/metrics"
	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

// identityKey is the context key under which Auth stores the resolved user.
const identityKey = "auth.identity"

// CurrentUser returns the authenticated user attached by Auth, if any.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(identityKey).(*domain.User)
	return user, ok
}

// Auth resolves the bearer token into a live identity and injects it into
// the request context. The token's role claim is ignored: the user is
// re-fetched on every request so deletions, suspensions and role changes
// take effect on the next call, not at token expiry.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "The user no longer exists")
				}
				return err
			}
			if user.Status != domain.UserActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "Account is not active")
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}
