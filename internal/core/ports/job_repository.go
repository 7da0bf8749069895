package ports

import (
	"context"
	"time"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// JobSearch filters the public published-job listing.
type JobSearch struct {
	Title           string
	Location        string
	JobType         string
	ExperienceLevel string
	CategoryID      string
	Page            int
	Limit           int
}

// JobRepository defines persistence for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) (*domain.Job, error)
	Delete(ctx context.Context, id string) error

	ListByCompany(ctx context.Context, companyID string) ([]domain.Job, error)
	Search(ctx context.Context, q JobSearch) ([]domain.Job, int64, error)

	CountByCompany(ctx context.Context, companyID string) (total, published int64, err error)
	CreatedSeries(ctx context.Context, from time.Time) ([]DatePoint, error)
	TotalCount(ctx context.Context) (int64, error)
	TopCompanies(ctx context.Context, limit int) ([]CompanyJobCount, error)
}
