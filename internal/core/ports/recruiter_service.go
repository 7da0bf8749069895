package ports

import (
	"context"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// RecruiterDashboard summarizes a recruiter's company and pipeline.
type RecruiterDashboard struct {
	Company           *domain.Company `json:"company"`
	TotalJobs         int64           `json:"total_jobs"`
	ActiveJobs        int64           `json:"active_jobs"`
	TotalApplications int64           `json:"total_applications"`
}

// CompanyProfileInput carries employer profile updates.
type CompanyProfileInput struct {
	Name        string
	IndustryID  string
	Industry    string
	Size        string
	Website     string
	Description string
}

// JobInput carries job create/update fields.
type JobInput struct {
	Title           string
	Description     string
	Location        string
	JobType         string
	ExperienceLevel string
	SalaryMin       int
	SalaryMax       int
	CategoryID      string
	IndustryID      string
	RequiredSkills  []string
	Status          domain.JobStatus
}

// Candidate is an application enriched with the applicant and job context a
// recruiter needs to review it.
type Candidate struct {
	Application domain.Application `json:"application"`
	Seeker      *domain.User       `json:"seeker,omitempty"`
	JobTitle    string             `json:"job_title,omitempty"`
}

// RecruiterAnalytics is the per-company hiring funnel.
type RecruiterAnalytics struct {
	TotalJobs            int64         `json:"total_jobs"`
	PublishedJobs        int64         `json:"published_jobs"`
	ApplicationsByStatus []StatusCount `json:"applications_by_status"`
}

// RecruiterService covers company profile, job and candidate management.
// Every operation is scoped to the calling recruiter's company; ownership is
// enforced inside the service, not by the caller.
type RecruiterService interface {
	Dashboard(ctx context.Context, recruiterID string) (*RecruiterDashboard, error)

	CompanyProfile(ctx context.Context, recruiterID string) (*domain.Company, error)
	UpdateCompanyProfile(ctx context.Context, recruiterID string, in CompanyProfileInput) (*domain.Company, error)

	ListJobs(ctx context.Context, recruiterID string) ([]domain.Job, error)
	CreateJob(ctx context.Context, recruiterID string, in JobInput) (*domain.Job, error)
	JobDetails(ctx context.Context, recruiterID, jobID string) (*domain.Job, error)
	UpdateJob(ctx context.Context, recruiterID, jobID string, in JobInput) (*domain.Job, error)
	DeleteJob(ctx context.Context, recruiterID, jobID string) error

	ListCandidates(ctx context.Context, recruiterID string, page, limit int) ([]Candidate, Page, error)
	CandidateDetails(ctx context.Context, recruiterID, applicationID string) (*Candidate, error)
	UpdateCandidateStatus(ctx context.Context, recruiterID, applicationID string, status domain.ApplicationStatus) (*domain.Application, error)

	Analytics(ctx context.Context, recruiterID string) (*RecruiterAnalytics, error)
}
