package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

const (
	dashboardRecentUsers = 5
	topCompaniesLimit    = 10
)

// AdminService implements platform administration: user management,
// category and industry management and system analytics. Dashboard and analytics
// aggregates are served through the stats cache when available.
type AdminService struct {
	users      ports.UserRepository
	jobs       ports.JobRepository
	apps       ports.ApplicationRepository
	categories ports.CategoryRepository
	industries ports.IndustryRepository
	cache      ports.StatsCache
	log        zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	categories ports.CategoryRepository,
	industries ports.IndustryRepository,
	cache ports.StatsCache,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:      users,
		jobs:       jobs,
		apps:       apps,
		categories: categories,
		industries: industries,
		cache:      cache,
		log:        log,
	}
}

func (s *AdminService) Dashboard(ctx context.Context) (*ports.AdminDashboard, error) {
	const key = "admin:dashboard"

	var cached ports.AdminDashboard
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	totalJobs, err := s.jobs.TotalCount(ctx)
	if err != nil {
		return nil, err
	}
	totalApps, err := s.apps.TotalCount(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.users.Recent(ctx, dashboardRecentUsers)
	if err != nil {
		return nil, err
	}

	d := &ports.AdminDashboard{
		UsersByRole:       byRole,
		TotalJobs:         totalJobs,
		TotalApplications: totalApps,
		RecentUsers:       recent,
	}
	s.cacheSet(ctx, key, d)
	return d, nil
}

func (s *AdminService) ListUsers(ctx context.Context, filter ports.UserFilter) ([]domain.User, ports.Page, error) {
	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, ports.Page{}, err
	}
	return users, ports.NewPage(total, filter.Page, filter.Limit), nil
}

func (s *AdminService) UserDetails(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AdminService) UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	if !status.Valid() {
		return nil, domain.Invalidf("status", "Invalid status specified")
	}
	return s.users.UpdateStatus(ctx, id, status)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *AdminService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *AdminService) CreateCategory(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	if in.Name == "" {
		return nil, domain.Invalidf("name", "name is required")
	}
	status := in.Status
	if status == "" {
		status = "ACTIVE"
	}
	return s.categories.Create(ctx, &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *AdminService) UpdateCategory(ctx context.Context, id string, in ports.CategoryInput) (*domain.Category, error) {
	if in.Name == "" {
		return nil, domain.Invalidf("name", "name is required")
	}
	return s.categories.Update(ctx, &domain.Category{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
	})
}

func (s *AdminService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *AdminService) ListIndustries(ctx context.Context) ([]domain.Industry, error) {
	return s.industries.List(ctx)
}

func (s *AdminService) CreateIndustry(ctx context.Context, in ports.IndustryInput) (*domain.Industry, error) {
	if in.Name == "" {
		return nil, domain.Invalidf("name", "name is required")
	}
	status := in.Status
	if status == "" {
		status = "ACTIVE"
	}
	return s.industries.Create(ctx, &domain.Industry{
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *AdminService) UpdateIndustry(ctx context.Context, id string, in ports.IndustryInput) (*domain.Industry, error) {
	if in.Name == "" {
		return nil, domain.Invalidf("name", "name is required")
	}
	return s.industries.Update(ctx, &domain.Industry{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
	})
}

func (s *AdminService) DeleteIndustry(ctx context.Context, id string) error {
	return s.industries.Delete(ctx, id)
}

func (s *AdminService) Analytics(ctx context.Context, timeRange string) (*ports.SystemAnalytics, error) {
	rng, from := resolveRange(timeRange)
	key := "admin:analytics:" + rng

	var cached ports.SystemAnalytics
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	userGrowth, err := s.users.RegistrationSeries(ctx, from)
	if err != nil {
		return nil, err
	}
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	jobGrowth, err := s.jobs.CreatedSeries(ctx, from)
	if err != nil {
		return nil, err
	}
	appGrowth, err := s.apps.AppliedSeries(ctx, from)
	if err != nil {
		return nil, err
	}
	topCompanies, err := s.jobs.TopCompanies(ctx, topCompaniesLimit)
	if err != nil {
		return nil, err
	}

	a := &ports.SystemAnalytics{
		Range:             rng,
		UserGrowth:        userGrowth,
		UsersByRole:       byRole,
		JobGrowth:         jobGrowth,
		ApplicationGrowth: appGrowth,
		TopCompanies:      topCompanies,
	}
	s.cacheSet(ctx, key, a)
	return a, nil
}

// resolveRange maps a range token to its start time, defaulting to 30d.
func resolveRange(timeRange string) (string, time.Time) {
	now := time.Now().UTC()
	switch timeRange {
	case "7d":
		return "7d", now.AddDate(0, 0, -7)
	case "90d":
		return "90d", now.AddDate(0, 0, -90)
	case "1y":
		return "1y", now.AddDate(-1, 0, 0)
	default:
		return "30d", now.AddDate(0, 0, -30)
	}
}

func (s *AdminService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		return false
	}
	return hit
}

func (s *AdminService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}
}
