package domain

import "time"

// JobStatus is the publication state of a job posting.
type JobStatus string

const (
	JobDraft     JobStatus = "DRAFT"
	JobPublished JobStatus = "PUBLISHED"
	JobClosed    JobStatus = "CLOSED"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobDraft, JobPublished, JobClosed:
		return true
	}
	return false
}

// Job is a posting owned by a company and created by a recruiter.
type Job struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	PostedBy        string    `json:"posted_by"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location,omitempty"`
	JobType         string    `json:"job_type,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	SalaryMin       int       `json:"salary_min,omitempty"`
	SalaryMax       int       `json:"salary_max,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	IndustryID      string    `json:"industry_id,omitempty"`
	RequiredSkills  []string  `json:"required_skills,omitempty"`
	Status          JobStatus `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
