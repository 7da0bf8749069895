package ports

import (
	"context"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// CompanyRepository defines persistence for employer profiles.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
}

// CategoryRepository defines persistence for job categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// IndustryRepository defines persistence for industries. List resolves the
// company and job counts attached to each industry.
type IndustryRepository interface {
	List(ctx context.Context) ([]domain.Industry, error)
	Create(ctx context.Context, industry *domain.Industry) (*domain.Industry, error)
	Update(ctx context.Context, industry *domain.Industry) (*domain.Industry, error)
	Delete(ctx context.Context, id string) error
}
