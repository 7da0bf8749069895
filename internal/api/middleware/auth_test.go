package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

type stubTokens struct {
	claims *ports.TokenClaims
	err    error
}

func (s *stubTokens) Issue(_ *domain.User) (string, error) {
	return "signed-token", nil
}

func (s *stubTokens) Verify(_ string) (*ports.TokenClaims, error) {
	return s.claims, s.err
}

type stubUsers struct {
	users map[string]*domain.User
}

func (s *stubUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// The remaining UserRepository methods are unreachable from Auth.
func (s *stubUsers) Create(context.Context, *domain.User) (*domain.User, error) { return nil, nil }
func (s *stubUsers) FindByEmail(context.Context, string) (*domain.User, error)  { return nil, nil }
func (s *stubUsers) List(context.Context, ports.UserFilter) ([]domain.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUsers) UpdateStatus(context.Context, string, domain.UserStatus) (*domain.User, error) {
	return nil, nil
}
func (s *stubUsers) UpdateLastLogin(context.Context, string, time.Time) error { return nil }
func (s *stubUsers) UpdateProfile(context.Context, string, domain.Profile) (*domain.User, error) {
	return nil, nil
}
func (s *stubUsers) Delete(context.Context, string) error                   { return nil }
func (s *stubUsers) CountByRole(context.Context) ([]ports.RoleCount, error) { return nil, nil }
func (s *stubUsers) RegistrationSeries(context.Context, time.Time) ([]ports.DatePoint, error) {
	return nil, nil
}
func (s *stubUsers) Recent(context.Context, int) ([]domain.User, error) { return nil, nil }

func authedRequest(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func expectHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
	if message != "" && he.Message != message {
		t.Fatalf("expected message %q, got %v", message, he.Message)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	user := &domain.User{ID: "user_1", Role: domain.RoleAdmin, Status: domain.UserActive}
	tokens := &stubTokens{claims: &ports.TokenClaims{UserID: "user_1", Role: domain.RoleAdmin}}
	users := &stubUsers{users: map[string]*domain.User{"user_1": user}}

	c, rec := authedRequest("Bearer signed-token")

	called := false
	handler := Auth(tokens, users)(func(c echo.Context) error {
		called = true
		got, ok := CurrentUser(c)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if got.ID != "user_1" {
			t.Fatalf("unexpected identity: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := &stubTokens{err: domain.ErrTokenInvalid}
	users := &stubUsers{users: map[string]*domain.User{}}

	c, _ := authedRequest("")
	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	expectHTTPError(t, handler(c), http.StatusUnauthorized, "You are not logged in")
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := &stubTokens{claims: &ports.TokenClaims{UserID: "user_1"}}
	users := &stubUsers{users: map[string]*domain.User{}}

	for _, header := range []string{"Token abc", "Bearer", "signed-token"} {
		c, _ := authedRequest(header)
		handler := Auth(tokens, users)(func(c echo.Context) error {
			t.Fatalf("should not reach next for %q", header)
			return nil
		})
		expectHTTPError(t, handler(c), http.StatusUnauthorized, "You are not logged in")
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := &stubTokens{err: domain.ErrTokenInvalid}
	users := &stubUsers{users: map[string]*domain.User{}}

	c, _ := authedRequest("Bearer garbage")
	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	expectHTTPError(t, handler(c), http.StatusUnauthorized, "Invalid or expired token")
}

func TestAuth_DeletedUser(t *testing.T) {
	// The token is valid, but the account it names is gone.
	tokens := &stubTokens{claims: &ports.TokenClaims{UserID: "user_1", Role: domain.RoleAdmin}}
	users := &stubUsers{users: map[string]*domain.User{}}

	c, _ := authedRequest("Bearer signed-token")
	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	expectHTTPError(t, handler(c), http.StatusUnauthorized, "The user no longer exists")
}

func TestAuth_SuspendedUser(t *testing.T) {
	user := &domain.User{ID: "user_1", Role: domain.RoleAdmin, Status: domain.UserSuspended}
	tokens := &stubTokens{claims: &ports.TokenClaims{UserID: "user_1", Role: domain.RoleAdmin}}
	users := &stubUsers{users: map[string]*domain.User{"user_1": user}}

	c, _ := authedRequest("Bearer signed-token")
	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	expectHTTPError(t, handler(c), http.StatusUnauthorized, "Account is not active")
}
