package domain

import "time"

// Company is the employer profile owned by a recruiter account.
type Company struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	IndustryID  string    `json:"industry_id,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Size        string    `json:"size,omitempty"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category groups job postings for browsing and reporting.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	JobCount    int64     `json:"job_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Industry classifies companies and their postings. Counts are filled in by
// the repository when listing.
type Industry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	CompanyCount int64     `json:"company_count"`
	JobCount     int64     `json:"job_count"`
	CreatedAt    time.Time `json:"created_at"`
}
