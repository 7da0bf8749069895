package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

// RecruiterService implements company profile, job and candidate management
// scoped to the calling recruiter's company. Jobs belonging to another
// company are reported as not found rather than forbidden, so postings are
// not enumerable across companies.
type RecruiterService struct {
	companies ports.CompanyRepository
	jobs      ports.JobRepository
	apps      ports.ApplicationRepository
	users     ports.UserRepository
	cache     ports.StatsCache
	log       zerolog.Logger
}

func NewRecruiterService(
	companies ports.CompanyRepository,
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	users ports.UserRepository,
	cache ports.StatsCache,
	log zerolog.Logger,
) *RecruiterService {
	return &RecruiterService{
		companies: companies,
		jobs:      jobs,
		apps:      apps,
		users:     users,
		cache:     cache,
		log:       log,
	}
}

func (s *RecruiterService) Dashboard(ctx context.Context, recruiterID string) (*ports.RecruiterDashboard, error) {
	key := "recruiter:dashboard:" + recruiterID

	var cached ports.RecruiterDashboard
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	company, err := s.companies.FindByOwner(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	total, published, err := s.jobs.CountByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	jobIDs, err := s.companyJobIDs(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.apps.CountByJobs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}
	var totalApps int64
	for _, sc := range byStatus {
		totalApps += sc.Count
	}

	d := &ports.RecruiterDashboard{
		Company:           company,
		TotalJobs:         total,
		ActiveJobs:        published,
		TotalApplications: totalApps,
	}
	s.cacheSet(ctx, key, d)
	return d, nil
}

func (s *RecruiterService) CompanyProfile(ctx context.Context, recruiterID string) (*domain.Company, error) {
	return s.companies.FindByOwner(ctx, recruiterID)
}

func (s *RecruiterService) UpdateCompanyProfile(ctx context.Context, recruiterID string, in ports.CompanyProfileInput) (*domain.Company, error) {
	if in.Name == "" {
		return nil, domain.Invalidf("name", "name is required")
	}

	now := time.Now().UTC()
	company, err := s.companies.FindByOwner(ctx, recruiterID)
	if errors.Is(err, domain.ErrCompanyNotFound) {
		// First save creates the profile.
		return s.companies.Create(ctx, &domain.Company{
			OwnerID:     recruiterID,
			Name:        in.Name,
			IndustryID:  in.IndustryID,
			Industry:    in.Industry,
			Size:        in.Size,
			Website:     in.Website,
			Description: in.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if err != nil {
		return nil, err
	}

	company.Name = in.Name
	company.IndustryID = in.IndustryID
	company.Industry = in.Industry
	company.Size = in.Size
	company.Website = in.Website
	company.Description = in.Description
	company.UpdatedAt = now
	return s.companies.Update(ctx, company)
}

func (s *RecruiterService) ListJobs(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	company, err := s.companies.FindByOwner(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	return s.jobs.ListByCompany(ctx, company.ID)
}

func (s *RecruiterService) CreateJob(ctx context.Context, recruiterID string, in ports.JobInput) (*domain.Job, error) {
	company, err := s.companies.FindByOwner(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.JobDraft
	}
	if !status.Valid() {
		return nil, domain.Invalidf("status", "Invalid job status specified")
	}

	now := time.Now().UTC()
	return s.jobs.Create(ctx, &domain.Job{
		CompanyID:       company.ID,
		PostedBy:        recruiterID,
		Title:           in.Title,
		Description:     in.Description,
		Location:        in.Location,
		JobType:         in.JobType,
		ExperienceLevel: in.ExperienceLevel,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		CategoryID:      in.CategoryID,
		IndustryID:      in.IndustryID,
		RequiredSkills:  in.RequiredSkills,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func (s *RecruiterService) JobDetails(ctx context.Context, recruiterID, jobID string) (*domain.Job, error) {
	return s.ownedJob(ctx, recruiterID, jobID)
}

func (s *RecruiterService) UpdateJob(ctx context.Context, recruiterID, jobID string, in ports.JobInput) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, recruiterID, jobID)
	if err != nil {
		return nil, err
	}

	if in.Status != "" && !in.Status.Valid() {
		return nil, domain.Invalidf("status", "Invalid job status specified")
	}

	job.Title = in.Title
	job.Description = in.Description
	job.Location = in.Location
	job.JobType = in.JobType
	job.ExperienceLevel = in.ExperienceLevel
	job.SalaryMin = in.SalaryMin
	job.SalaryMax = in.SalaryMax
	job.CategoryID = in.CategoryID
	job.IndustryID = in.IndustryID
	job.RequiredSkills = in.RequiredSkills
	if in.Status != "" {
		job.Status = in.Status
	}
	job.UpdatedAt = time.Now().UTC()
	return s.jobs.Update(ctx, job)
}

func (s *RecruiterService) DeleteJob(ctx context.Context, recruiterID, jobID string) error {
	job, err := s.ownedJob(ctx, recruiterID, jobID)
	if err != nil {
		return err
	}
	return s.jobs.Delete(ctx, job.ID)
}

func (s *RecruiterService) ListCandidates(ctx context.Context, recruiterID string, page, limit int) ([]ports.Candidate, ports.Page, error) {
	company, err := s.companies.FindByOwner(ctx, recruiterID)
	if err != nil {
		return nil, ports.Page{}, err
	}

	jobs, err := s.jobs.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, ports.Page{}, err
	}
	jobIDs := make([]string, 0, len(jobs))
	titles := make(map[string]string, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
		titles[j.ID] = j.Title
	}

	apps, total, err := s.apps.ListByJobs(ctx, jobIDs, page, limit)
	if err != nil {
		return nil, ports.Page{}, err
	}

	candidates := make([]ports.Candidate, 0, len(apps))
	for _, app := range apps {
		c := ports.Candidate{Application: app, JobTitle: titles[app.JobID]}
		if seeker, err := s.users.FindByID(ctx, app.SeekerID); err == nil {
			c.Seeker = seeker
		}
		candidates = append(candidates, c)
	}
	return candidates, ports.NewPage(total, page, limit), nil
}

func (s *RecruiterService) CandidateDetails(ctx context.Context, recruiterID, applicationID string) (*ports.Candidate, error) {
	app, job, err := s.ownedApplication(ctx, recruiterID, applicationID)
	if err != nil {
		return nil, err
	}

	c := &ports.Candidate{Application: *app, JobTitle: job.Title}
	if seeker, err := s.users.FindByID(ctx, app.SeekerID); err == nil {
		c.Seeker = seeker
	}
	return c, nil
}

func (s *RecruiterService) UpdateCandidateStatus(ctx context.Context, recruiterID, applicationID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, domain.Invalidf("status", "Invalid application status specified")
	}
	app, _, err := s.ownedApplication(ctx, recruiterID, applicationID)
	if err != nil {
		return nil, err
	}
	return s.apps.UpdateStatus(ctx, app.ID, status)
}

func (s *RecruiterService) Analytics(ctx context.Context, recruiterID string) (*ports.RecruiterAnalytics, error) {
	key := "recruiter:analytics:" + recruiterID

	var cached ports.RecruiterAnalytics
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	company, err := s.companies.FindByOwner(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	total, published, err := s.jobs.CountByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	jobIDs, err := s.companyJobIDs(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.apps.CountByJobs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	a := &ports.RecruiterAnalytics{
		TotalJobs:            total,
		PublishedJobs:        published,
		ApplicationsByStatus: byStatus,
	}
	s.cacheSet(ctx, key, a)
	return a, nil
}

// ownedJob loads a job and verifies it belongs to the recruiter's company.
func (s *RecruiterService) ownedJob(ctx context.Context, recruiterID, jobID string) (*domain.Job, error) {
	company, err := s.companies.FindByOwner(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != company.ID {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

// ownedApplication loads an application and verifies its job belongs to the
// recruiter's company.
func (s *RecruiterService) ownedApplication(ctx context.Context, recruiterID, applicationID string) (*domain.Application, *domain.Job, error) {
	company, err := s.companies.FindByOwner(ctx, recruiterID)
	if err != nil {
		return nil, nil, err
	}
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, nil, err
	}
	if job.CompanyID != company.ID {
		return nil, nil, domain.ErrApplicationNotFound
	}
	return app, job, nil
}

func (s *RecruiterService) companyJobIDs(ctx context.Context, companyID string) ([]string, error) {
	jobs, err := s.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids, nil
}

func (s *RecruiterService) cacheGet(ctx context.Context, key string, dest any) bool {
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

func (s *RecruiterService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}
}
