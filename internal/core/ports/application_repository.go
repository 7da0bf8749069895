package ports

import (
	"context"
	"time"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// StatusCount buckets applications by review status.
type StatusCount struct {
	Status domain.ApplicationStatus `json:"status"`
	Count  int64                    `json:"count"`
}

// ApplicationRepository defines persistence for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)

	ListBySeeker(ctx context.Context, seekerID string, page, limit int) ([]domain.Application, int64, error)
	ListByJobs(ctx context.Context, jobIDs []string, page, limit int) ([]domain.Application, int64, error)

	CountBySeeker(ctx context.Context, seekerID string) ([]StatusCount, error)
	CountByJobs(ctx context.Context, jobIDs []string) ([]StatusCount, error)
	AppliedSeries(ctx context.Context, from time.Time) ([]DatePoint, error)
	TotalCount(ctx context.Context) (int64, error)
}

// SavedJobRepository defines persistence for jobseeker bookmarks.
type SavedJobRepository interface {
	Save(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error)
	Remove(ctx context.Context, seekerID, jobID string) error
	ListBySeeker(ctx context.Context, seekerID string) ([]domain.SavedJob, error)
	CountBySeeker(ctx context.Context, seekerID string) (int64, error)
}
