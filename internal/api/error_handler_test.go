package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorEnvelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not the error envelope: %v", err)
	}
	return rec.Code, env
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{domain.ErrEmailInUse, http.StatusBadRequest, "Email already in use"},
		{domain.ErrAccountInactive, http.StatusForbidden, "Account is not active"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "You are not authenticated"},
		{domain.ErrUserGone, http.StatusUnauthorized, "The user no longer exists"},
		{domain.ErrTokenInvalid, http.StatusUnauthorized, "Invalid or expired token"},
		{domain.ErrForbidden, http.StatusForbidden, "You do not have permission to access this resource"},
		{domain.ErrJobNotFound, http.StatusNotFound, "Job not found"},
		{domain.ErrIndustryNotFound, http.StatusNotFound, "Industry not found"},
		{domain.ErrAlreadyApplied, http.StatusConflict, "You have already applied for this job"},
		{domain.ErrJobAlreadySaved, http.StatusConflict, "Job already saved"},
	}

	for _, tc := range cases {
		code, env := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.code, code)
		}
		if env.Message != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, env.Message)
		}
		if env.Status != "fail" {
			t.Fatalf("%v: expected fail status, got %q", tc.err, env.Status)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("load user"), domain.ErrUserNotFound)

	code, env := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if env.Message != "User not found" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	err := domain.NewValidationError(
		domain.FieldError{Field: "email", Message: "Please provide a valid email"},
		domain.FieldError{Field: "password", Message: "Password must be at least 8 characters long"},
	)

	code, env := renderError(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Status != "fail" {
		t.Fatalf("expected fail status, got %q", env.Status)
	}
	want := "Please provide a valid email; Password must be at least 8 characters long"
	if env.Message != want {
		t.Fatalf("expected %q, got %q", want, env.Message)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, env := renderError(t, echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests from this IP, please try again later"))
	if code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if env.Status != "fail" {
		t.Fatalf("expected fail status, got %q", env.Status)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	// Internal details must never leak to the client.
	code, env := renderError(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if env.Status != "error" {
		t.Fatalf("expected error status, got %q", env.Status)
	}
	if env.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", env.Message)
	}
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("commit response: %v", err)
	}

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrJobNotFound, c)
	if rec.Code != http.StatusOK {
		t.Fatalf("handler wrote over a committed response: %d", rec.Code)
	}
}
