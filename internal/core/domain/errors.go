package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure taxonomy. The API layer owns the mapping
// to HTTP status codes and client-facing messages.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrAccountInactive    = errors.New("account is not active")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrUserGone           = errors.New("user no longer exists")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("permission denied")

	ErrUserNotFound        = errors.New("user not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrIndustryNotFound    = errors.New("industry not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrSkillNotFound       = errors.New("skill not found")

	ErrAlreadyApplied  = errors.New("already applied for this job")
	ErrJobAlreadySaved = errors.New("job already saved")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures from request validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Invalidf is a shorthand for a single-field ValidationError.
func Invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Fields: []FieldError{{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}}}
}
