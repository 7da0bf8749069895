package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailInUse
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.UserFilter) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		out = append(out, *cloneUser(u))
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Status = status
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLogin = &at
	return nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, profile domain.Profile) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Profile = profile
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context) ([]ports.RoleCount, error) {
	byRole := make(map[domain.Role]int64)
	for _, u := range r.users {
		byRole[u.Role]++
	}
	out := make([]ports.RoleCount, 0, len(byRole))
	for role, n := range byRole {
		out = append(out, ports.RoleCount{Role: role, Count: n})
	}
	return out, nil
}

func (r *stubUserRepo) RegistrationSeries(_ context.Context, _ time.Time) ([]ports.DatePoint, error) {
	return nil, nil
}

func (r *stubUserRepo) Recent(_ context.Context, limit int) ([]domain.User, error) {
	out := make([]domain.User, 0, limit)
	for _, u := range r.users {
		if len(out) == limit {
			break
		}
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

type stubJobRepo struct {
	jobs map[string]*domain.Job
	seq  int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.seq++
	copy := *job
	copy.ID = fmt.Sprintf("job_%d", r.seq)
	r.jobs[copy.ID] = &copy
	created := copy
	return &created, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	copy := *j
	return &copy, nil
}

func (r *stubJobRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := r.jobs[id]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, job *domain.Job) (*domain.Job, error) {
	if _, ok := r.jobs[job.ID]; !ok {
		return nil, domain.ErrJobNotFound
	}
	copy := *job
	r.jobs[job.ID] = &copy
	updated := copy
	return &updated, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) ListByCompany(_ context.Context, companyID string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Search(_ context.Context, _ ports.JobSearch) ([]domain.Job, int64, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if j.Status == domain.JobPublished {
			out = append(out, *j)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubJobRepo) CountByCompany(_ context.Context, companyID string) (int64, int64, error) {
	var total, published int64
	for _, j := range r.jobs {
		if j.CompanyID != companyID {
			continue
		}
		total++
		if j.Status == domain.JobPublished {
			published++
		}
	}
	return total, published, nil
}

func (r *stubJobRepo) CreatedSeries(_ context.Context, _ time.Time) ([]ports.DatePoint, error) {
	return nil, nil
}

func (r *stubJobRepo) TotalCount(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

func (r *stubJobRepo) TopCompanies(_ context.Context, _ int) ([]ports.CompanyJobCount, error) {
	return nil, nil
}

type stubAppRepo struct {
	apps map[string]*domain.Application
	seq  int
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.SeekerID == app.SeekerID {
			return nil, domain.ErrAlreadyApplied
		}
	}
	r.seq++
	copy := *app
	copy.ID = fmt.Sprintf("app_%d", r.seq)
	r.apps[copy.ID] = &copy
	created := copy
	return &created, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	copy := *a
	return &copy, nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	a.Status = status
	copy := *a
	return &copy, nil
}

func (r *stubAppRepo) ListBySeeker(_ context.Context, seekerID string, _, _ int) ([]domain.Application, int64, error) {
	var out []domain.Application
	for _, a := range r.apps {
		if a.SeekerID == seekerID {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubAppRepo) ListByJobs(_ context.Context, jobIDs []string, _, _ int) ([]domain.Application, int64, error) {
	var out []domain.Application
	for _, a := range r.apps {
		for _, id := range jobIDs {
			if a.JobID == id {
				out = append(out, *a)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubAppRepo) CountBySeeker(_ context.Context, seekerID string) ([]ports.StatusCount, error) {
	byStatus := make(map[domain.ApplicationStatus]int64)
	for _, a := range r.apps {
		if a.SeekerID == seekerID {
			byStatus[a.Status]++
		}
	}
	out := make([]ports.StatusCount, 0, len(byStatus))
	for status, n := range byStatus {
		out = append(out, ports.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func (r *stubAppRepo) CountByJobs(_ context.Context, _ []string) ([]ports.StatusCount, error) {
	return nil, nil
}

func (r *stubAppRepo) AppliedSeries(_ context.Context, _ time.Time) ([]ports.DatePoint, error) {
	return nil, nil
}

func (r *stubAppRepo) TotalCount(_ context.Context) (int64, error) {
	return int64(len(r.apps)), nil
}

type stubSavedRepo struct {
	saved map[string]*domain.SavedJob
	seq   int
}

func newStubSavedRepo() *stubSavedRepo {
	return &stubSavedRepo{saved: make(map[string]*domain.SavedJob)}
}

func (r *stubSavedRepo) Save(_ context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
	for _, s := range r.saved {
		if s.SeekerID == seekerID && s.JobID == jobID {
			return nil, domain.ErrJobAlreadySaved
		}
	}
	r.seq++
	s := &domain.SavedJob{
		ID:       fmt.Sprintf("saved_%d", r.seq),
		SeekerID: seekerID,
		JobID:    jobID,
		SavedAt:  time.Now().UTC(),
	}
	r.saved[s.ID] = s
	copy := *s
	return &copy, nil
}

func (r *stubSavedRepo) Remove(_ context.Context, seekerID, jobID string) error {
	for id, s := range r.saved {
		if s.SeekerID == seekerID && s.JobID == jobID {
			delete(r.saved, id)
			return nil
		}
	}
	return domain.ErrJobNotFound
}

func (r *stubSavedRepo) ListBySeeker(_ context.Context, seekerID string) ([]domain.SavedJob, error) {
	var out []domain.SavedJob
	for _, s := range r.saved {
		if s.SeekerID == seekerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSavedRepo) CountBySeeker(_ context.Context, seekerID string) (int64, error) {
	var n int64
	for _, s := range r.saved {
		if s.SeekerID == seekerID {
			n++
		}
	}
	return n, nil
}

// memCache is a StatsCache backed by a map, recording hits and sets.
type memCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memCache) Set(_ context.Context, key string, value any) error {
	c.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}
