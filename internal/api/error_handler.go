package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// errorEnvelope is the canonical failure envelope: status is "fail" for
// operational 4xx failures and "error" for unexpected 5xx ones.
type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"status": ..., "message": ...}.
//
// Every failure raised anywhere in the pipeline, including panics recovered
// by the Recover middleware, funnels through here.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		status := "error"
		if code < http.StatusInternalServerError {
			status = "fail"
		}
		_ = c.JSON(code, errorEnvelope{Status: status, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware
	// rejections raised as HTTPErrors).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Aggregated field validation failures.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	// Known domain errors → deterministic HTTP codes and messages.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusBadRequest, "Email already in use"
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusForbidden, "Account is not active"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "You are not authenticated"
	case errors.Is(err, domain.ErrUserGone):
		return http.StatusUnauthorized, "The user no longer exists"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to access this resource"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrCompanyNotFound):
		return http.StatusNotFound, "Company not found"
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, "Job not found"
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, "Application not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found"
	case errors.Is(err, domain.ErrIndustryNotFound):
		return http.StatusNotFound, "Industry not found"
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, "Profile not found"
	case errors.Is(err, domain.ErrSkillNotFound):
		return http.StatusNotFound, "Skill not found"
	case errors.Is(err, domain.ErrAlreadyApplied):
		return http.StatusConflict, "You have already applied for this job"
	case errors.Is(err, domain.ErrJobAlreadySaved):
		return http.StatusConflict, "Job already saved"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
