package ports

import (
	"context"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// RegisterInput carries a registration request into the auth service.
type RegisterInput struct {
	Email     string
	Password  string
	Role      domain.Role
	FirstName string
	LastName  string
}

// AuthService implements registration, login and current-user lookup.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, user *domain.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
}
