package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/api/middleware"
	"github.com/talentboard/job-board-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware and
// fast-fails when it is absent: presence proves the middleware ran, so a
// missing identity means the route was wired without its gate.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "You are not authenticated")
	}
	return user, nil
}
