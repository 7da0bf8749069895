package ports

import (
	"context"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

// AdminDashboard is the platform-wide summary shown to administrators.
type AdminDashboard struct {
	UsersByRole       []RoleCount   `json:"users_by_role"`
	TotalJobs         int64         `json:"total_jobs"`
	TotalApplications int64         `json:"total_applications"`
	RecentUsers       []domain.User `json:"recent_users"`
}

// SystemAnalytics aggregates growth series over a time range.
type SystemAnalytics struct {
	Range             string            `json:"range"`
	UserGrowth        []DatePoint       `json:"user_growth"`
	UsersByRole       []RoleCount       `json:"users_by_role"`
	JobGrowth         []DatePoint       `json:"job_growth"`
	ApplicationGrowth []DatePoint       `json:"application_growth"`
	TopCompanies      []CompanyJobCount `json:"top_companies"`
}

// CategoryInput carries category create/update fields.
type CategoryInput struct {
	Name        string
	Description string
	Status      string
}

// IndustryInput carries industry create/update fields.
type IndustryInput struct {
	Name        string
	Description string
	Status      string
}

// AdminService covers user management, content management and analytics.
type AdminService interface {
	Dashboard(ctx context.Context) (*AdminDashboard, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]domain.User, Page, error)
	UserDetails(ctx context.Context, id string) (*domain.User, error)
	UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListIndustries(ctx context.Context) ([]domain.Industry, error)
	CreateIndustry(ctx context.Context, in IndustryInput) (*domain.Industry, error)
	UpdateIndustry(ctx context.Context, id string, in IndustryInput) (*domain.Industry, error)
	DeleteIndustry(ctx context.Context, id string) error

	Analytics(ctx context.Context, timeRange string) (*SystemAnalytics, error)
}
