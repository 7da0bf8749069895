package ports

import "github.com/talentboard/job-board-api/internal/core/domain"

// Page describes the pagination block returned alongside list results.
type Page struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPage computes the page count for a total at the given page/limit.
func NewPage(total int64, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Page{Total: total, Page: page, Limit: limit, Pages: pages}
}

// Offset returns the number of records to skip for this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// DatePoint is one bucket of a per-day growth series.
type DatePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// RoleCount is the number of users holding a role.
type RoleCount struct {
	Role  domain.Role `json:"role"`
	Count int64       `json:"count"`
}

// CompanyJobCount ranks a company by its number of postings.
type CompanyJobCount struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Jobs      int64  `json:"jobs"`
}
