package ports

import (
	"context"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// JobseekerDashboard summarizes a seeker's activity.
type JobseekerDashboard struct {
	ApplicationsByStatus []StatusCount `json:"applications_by_status"`
	SavedJobs            int64         `json:"saved_jobs"`
}

// ApplicationDetail pairs an application with its job posting.
type ApplicationDetail struct {
	Application domain.Application `json:"application"`
	Job         *domain.Job        `json:"job,omitempty"`
}

// JobseekerService covers profile, job search, applications, saved jobs and
// skills. Operations are scoped to the calling seeker.
type JobseekerService interface {
	Dashboard(ctx context.Context, seekerID string) (*JobseekerDashboard, error)

	Profile(ctx context.Context, seekerID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, seekerID string, profile domain.Profile) (*domain.Profile, error)

	SearchJobs(ctx context.Context, q JobSearch) ([]domain.Job, Page, error)

	ListApplications(ctx context.Context, seekerID string, page, limit int) ([]ApplicationDetail, Page, error)
	Apply(ctx context.Context, seekerID, jobID, coverLetter string) (*domain.Application, error)
	ApplicationDetails(ctx context.Context, seekerID, applicationID string) (*ApplicationDetail, error)

	ListSavedJobs(ctx context.Context, seekerID string) ([]domain.Job, error)
	SaveJob(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error)
	UnsaveJob(ctx context.Context, seekerID, jobID string) error

	ListSkills(ctx context.Context, seekerID string) ([]domain.Skill, error)
	AddSkill(ctx context.Context, seekerID string, skill domain.Skill) ([]domain.Skill, error)
	UpdateSkill(ctx context.Context, seekerID, name string, skill domain.Skill) ([]domain.Skill, error)
	RemoveSkill(ctx context.Context, seekerID, name string) ([]domain.Skill, error)
}
