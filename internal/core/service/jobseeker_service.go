package service

import (
	"context"
	"strings"
	"time"

	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

// JobseekerService implements profile management, published-job search,
// applications, saved jobs and skills, scoped to the calling seeker.
type JobseekerService struct {
	users ports.UserRepository
	jobs  ports.JobRepository
	apps  ports.ApplicationRepository
	saved ports.SavedJobRepository
}

func NewJobseekerService(
	users ports.UserRepository,
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	saved ports.SavedJobRepository,
) *JobseekerService {
	return &JobseekerService{users: users, jobs: jobs, apps: apps, saved: saved}
}

func (s *JobseekerService) Dashboard(ctx context.Context, seekerID string) (*ports.JobseekerDashboard, error) {
	byStatus, err := s.apps.CountBySeeker(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	savedCount, err := s.saved.CountBySeeker(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	return &ports.JobseekerDashboard{
		ApplicationsByStatus: byStatus,
		SavedJobs:            savedCount,
	}, nil
}

func (s *JobseekerService) Profile(ctx context.Context, seekerID string) (*domain.Profile, error) {
	user, err := s.users.FindByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	return &user.Profile, nil
}

func (s *JobseekerService) UpdateProfile(ctx context.Context, seekerID string, profile domain.Profile) (*domain.Profile, error) {
	user, err := s.users.UpdateProfile(ctx, seekerID, profile)
	if err != nil {
		return nil, err
	}
	return &user.Profile, nil
}

func (s *JobseekerService) SearchJobs(ctx context.Context, q ports.JobSearch) ([]domain.Job, ports.Page, error) {
	jobs, total, err := s.jobs.Search(ctx, q)
	if err != nil {
		return nil, ports.Page{}, err
	}
	return jobs, ports.NewPage(total, q.Page, q.Limit), nil
}

func (s *JobseekerService) ListApplications(ctx context.Context, seekerID string, page, limit int) ([]ports.ApplicationDetail, ports.Page, error) {
	apps, total, err := s.apps.ListBySeeker(ctx, seekerID, page, limit)
	if err != nil {
		return nil, ports.Page{}, err
	}

	jobIDs := make([]string, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.JobID)
	}
	jobs, err := s.jobs.FindByIDs(ctx, jobIDs)
	if err != nil {
		return nil, ports.Page{}, err
	}
	byID := make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	details := make([]ports.ApplicationDetail, 0, len(apps))
	for _, a := range apps {
		d := ports.ApplicationDetail{Application: a}
		if j, ok := byID[a.JobID]; ok {
			job := j
			d.Job = &job
		}
		details = append(details, d)
	}
	return details, ports.NewPage(total, page, limit), nil
}

func (s *JobseekerService) Apply(ctx context.Context, seekerID, jobID, coverLetter string) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	// Draft and closed postings are not open for applications.
	if job.Status != domain.JobPublished {
		return nil, domain.ErrJobNotFound
	}

	now := time.Now().UTC()
	return s.apps.Create(ctx, &domain.Application{
		JobID:       job.ID,
		SeekerID:    seekerID,
		CoverLetter: coverLetter,
		Status:      domain.ApplicationPending,
		AppliedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *JobseekerService) ApplicationDetails(ctx context.Context, seekerID, applicationID string) (*ports.ApplicationDetail, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.SeekerID != seekerID {
		return nil, domain.ErrApplicationNotFound
	}

	d := &ports.ApplicationDetail{Application: *app}
	if job, err := s.jobs.FindByID(ctx, app.JobID); err == nil {
		d.Job = job
	}
	return d, nil
}

func (s *JobseekerService) ListSavedJobs(ctx context.Context, seekerID string) ([]domain.Job, error) {
	saved, err := s.saved.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(saved))
	for _, sj := range saved {
		ids = append(ids, sj.JobID)
	}
	return s.jobs.FindByIDs(ctx, ids)
}

func (s *JobseekerService) SaveJob(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.saved.Save(ctx, seekerID, jobID)
}

func (s *JobseekerService) UnsaveJob(ctx context.Context, seekerID, jobID string) error {
	return s.saved.Remove(ctx, seekerID, jobID)
}

func (s *JobseekerService) ListSkills(ctx context.Context, seekerID string) ([]domain.Skill, error) {
	user, err := s.users.FindByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	return user.Profile.Skills, nil
}

func (s *JobseekerService) AddSkill(ctx context.Context, seekerID string, skill domain.Skill) ([]domain.Skill, error) {
	if skill.Name == "" {
		return nil, domain.Invalidf("name", "name is required")
	}

	user, err := s.users.FindByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	for _, sk := range profile.Skills {
		if strings.EqualFold(sk.Name, skill.Name) {
			return nil, domain.Invalidf("name", "skill %q already exists", skill.Name)
		}
	}
	profile.Skills = append(profile.Skills, skill)

	updated, err := s.users.UpdateProfile(ctx, seekerID, profile)
	if err != nil {
		return nil, err
	}
	return updated.Profile.Skills, nil
}

func (s *JobseekerService) UpdateSkill(ctx context.Context, seekerID, name string, skill domain.Skill) ([]domain.Skill, error) {
	user, err := s.users.FindByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	found := false
	for i, sk := range profile.Skills {
		if strings.EqualFold(sk.Name, name) {
			if skill.Name != "" {
				profile.Skills[i].Name = skill.Name
			}
			profile.Skills[i].Level = skill.Level
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrSkillNotFound
	}

	updated, err := s.users.UpdateProfile(ctx, seekerID, profile)
	if err != nil {
		return nil, err
	}
	return updated.Profile.Skills, nil
}

func (s *JobseekerService) RemoveSkill(ctx context.Context, seekerID, name string) ([]domain.Skill, error) {
	user, err := s.users.FindByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	kept := profile.Skills[:0]
	found := false
	for _, sk := range profile.Skills {
		if strings.EqualFold(sk.Name, name) {
			found = true
			continue
		}
		kept = append(kept, sk)
	}
	if !found {
		return nil, domain.ErrSkillNotFound
	}
	profile.Skills = kept

	updated, err := s.users.UpdateProfile(ctx, seekerID, profile)
	if err != nil {
		return nil, err
	}
	return updated.Profile.Skills, nil
}
