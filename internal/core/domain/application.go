package domain

import "time"

// ApplicationStatus is the recruiter-managed review state of an application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationReviewed    ApplicationStatus = "REVIEWED"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationHired       ApplicationStatus = "HIRED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted,
		ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// Application links a jobseeker to a job posting. A seeker applies to a
// given job at most once.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	SeekerID    string            `json:"seeker_id"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SavedJob bookmarks a job for a jobseeker.
type SavedJob struct {
	ID       string    `json:"id"`
	SeekerID string    `json:"seeker_id"`
	JobID    string    `json:"job_id"`
	SavedAt  time.Time `json:"saved_at"`
}
