package ports

import (
	"context"
	"time"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// UserFilter narrows List queries; zero values mean "any".
type UserFilter struct {
	Role   domain.Role
	Status domain.UserStatus
	Page   int
	Limit  int
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdateProfile(ctx context.Context, id string, profile domain.Profile) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	CountByRole(ctx context.Context) ([]RoleCount, error)
	RegistrationSeries(ctx context.Context, from time.Time) ([]DatePoint, error)
	Recent(ctx context.Context, limit int) ([]domain.User, error)
}
