package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

func newAdminService(users *stubUserRepo, jobs *stubJobRepo, apps *stubAppRepo, cache ports.StatsCache) *AdminService {
	return NewAdminService(users, jobs, apps, newStubCategoryRepo(), newStubIndustryRepo(), cache, zerolog.Nop())
}

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	seq        int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.seq++
	copy := *category
	copy.ID = fmt.Sprintf("cat_%d", r.seq)
	r.categories[copy.ID] = &copy
	created := copy
	return &created, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	existing, ok := r.categories[category.ID]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	existing.Name = category.Name
	existing.Description = category.Description
	existing.Status = category.Status
	copy := *existing
	return &copy, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

type stubIndustryRepo struct {
	industries map[string]*domain.Industry
	seq        int
}

func newStubIndustryRepo() *stubIndustryRepo {
	return &stubIndustryRepo{industries: make(map[string]*domain.Industry)}
}

func (r *stubIndustryRepo) List(_ context.Context) ([]domain.Industry, error) {
	out := make([]domain.Industry, 0, len(r.industries))
	for _, i := range r.industries {
		out = append(out, *i)
	}
	return out, nil
}

func (r *stubIndustryRepo) Create(_ context.Context, industry *domain.Industry) (*domain.Industry, error) {
	r.seq++
	copy := *industry
	copy.ID = fmt.Sprintf("ind_%d", r.seq)
	r.industries[copy.ID] = &copy
	created := copy
	return &created, nil
}

func (r *stubIndustryRepo) Update(_ context.Context, industry *domain.Industry) (*domain.Industry, error) {
	existing, ok := r.industries[industry.ID]
	if !ok {
		return nil, domain.ErrIndustryNotFound
	}
	existing.Name = industry.Name
	existing.Description = industry.Description
	existing.Status = industry.Status
	copy := *existing
	return &copy, nil
}

func (r *stubIndustryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.industries[id]; !ok {
		return domain.ErrIndustryNotFound
	}
	delete(r.industries, id)
	return nil
}

func TestAdminService_Dashboard(t *testing.T) {
	users, jobs, apps := newStubUserRepo(), newStubJobRepo(), newStubAppRepo()
	svc := newAdminService(users, jobs, apps, newMemCache())

	users.Create(context.Background(), &domain.User{Email: "a@example.com", Role: domain.RoleAdmin})
	users.Create(context.Background(), &domain.User{Email: "b@example.com", Role: domain.RoleJobseeker})
	seedJob(jobs, domain.JobPublished)

	d, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if d.TotalJobs != 1 {
		t.Fatalf("expected 1 job, got %d", d.TotalJobs)
	}
	if len(d.UsersByRole) != 2 {
		t.Fatalf("expected 2 role buckets, got %+v", d.UsersByRole)
	}
}

func TestAdminService_Dashboard_ServedFromCache(t *testing.T) {
	users, jobs, apps := newStubUserRepo(), newStubJobRepo(), newStubAppRepo()
	cache := newMemCache()
	svc := newAdminService(users, jobs, apps, cache)

	if _, err := svc.Dashboard(context.Background()); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache set, got %d", cache.sets)
	}

	// New data must not show until the cache entry expires.
	seedJob(jobs, domain.JobPublished)

	d, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if d.TotalJobs != 0 {
		t.Fatalf("expected cached total of 0 jobs, got %d", d.TotalJobs)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit should not trigger another set, got %d", cache.sets)
	}
}

func TestAdminService_Dashboard_NilCache(t *testing.T) {
	users, jobs, apps := newStubUserRepo(), newStubJobRepo(), newStubAppRepo()
	svc := newAdminService(users, jobs, apps, nil)

	if _, err := svc.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard with nil cache returned error: %v", err)
	}
}

func TestAdminService_UpdateUserStatus(t *testing.T) {
	users, jobs, apps := newStubUserRepo(), newStubJobRepo(), newStubAppRepo()
	svc := newAdminService(users, jobs, apps, nil)

	user, _ := users.Create(context.Background(), &domain.User{Email: "a@example.com", Role: domain.RoleJobseeker, Status: domain.UserActive})

	updated, err := svc.UpdateUserStatus(context.Background(), user.ID, domain.UserSuspended)
	if err != nil {
		t.Fatalf("UpdateUserStatus returned error: %v", err)
	}
	if updated.Status != domain.UserSuspended {
		t.Fatalf("expected SUSPENDED, got %s", updated.Status)
	}

	var verr *domain.ValidationError
	if _, err := svc.UpdateUserStatus(context.Background(), user.ID, "FROZEN"); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if _, err := svc.UpdateUserStatus(context.Background(), "missing", domain.UserActive); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_Categories(t *testing.T) {
	users, jobs, apps := newStubUserRepo(), newStubJobRepo(), newStubAppRepo()
	svc := newAdminService(users, jobs, apps, nil)

	created, err := svc.CreateCategory(context.Background(), ports.CategoryInput{Name: "Engineering"})
	if err != nil {
		t.Fatalf("CreateCategory returned error: %v", err)
	}
	if created.Status != "ACTIVE" {
		t.Fatalf("expected default ACTIVE status, got %s", created.Status)
	}

	var verr *domain.ValidationError
	if _, err := svc.CreateCategory(context.Background(), ports.CategoryInput{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if err := svc.DeleteCategory(context.Background(), "missing"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteCategory returned error: %v", err)
	}
}

func TestAdminService_Industries(t *testing.T) {
	users, jobs, apps := newStubUserRepo(), newStubJobRepo(), newStubAppRepo()
	svc := newAdminService(users, jobs, apps, nil)

	created, err := svc.CreateIndustry(context.Background(), ports.IndustryInput{Name: "Technology"})
	if err != nil {
		t.Fatalf("CreateIndustry returned error: %v", err)
	}
	if created.Status != "ACTIVE" {
		t.Fatalf("expected default ACTIVE status, got %s", created.Status)
	}

	var verr *domain.ValidationError
	if _, err := svc.CreateIndustry(context.Background(), ports.IndustryInput{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	updated, err := svc.UpdateIndustry(context.Background(), created.ID, ports.IndustryInput{Name: "Tech", Status: "INACTIVE"})
	if err != nil {
		t.Fatalf("UpdateIndustry returned error: %v", err)
	}
	if updated.Name != "Tech" || updated.Status != "INACTIVE" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if _, err := svc.UpdateIndustry(context.Background(), "missing", ports.IndustryInput{Name: "X"}); !errors.Is(err, domain.ErrIndustryNotFound) {
		t.Fatalf("expected ErrIndustryNotFound, got %v", err)
	}

	if err := svc.DeleteIndustry(context.Background(), "missing"); !errors.Is(err, domain.ErrIndustryNotFound) {
		t.Fatalf("expected ErrIndustryNotFound, got %v", err)
	}
	if err := svc.DeleteIndustry(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteIndustry returned error: %v", err)
	}

	industries, err := svc.ListIndustries(context.Background())
	if err != nil {
		t.Fatalf("ListIndustries returned error: %v", err)
	}
	if len(industries) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", industries)
	}
}

func TestResolveRange(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"7d", "7d"},
		{"30d", "30d"},
		{"90d", "90d"},
		{"1y", "1y"},
		{"", "30d"},
		{"nonsense", "30d"},
	} {
		if got, _ := resolveRange(tc.in); got != tc.want {
			t.Fatalf("resolveRange(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
