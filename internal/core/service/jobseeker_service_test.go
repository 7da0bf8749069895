package service

import (
	"context"
	"errors"
	"testing"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

func seedSeeker(repo *stubUserRepo) *domain.User {
	user, _ := repo.Create(context.Background(), &domain.User{
		Email:  "seeker@example.com",
		Role:   domain.RoleJobseeker,
		Status: domain.UserActive,
	})
	return user
}

func seedJob(repo *stubJobRepo, status domain.JobStatus) *domain.Job {
	job, _ := repo.Create(context.Background(), &domain.Job{
		CompanyID: "company_1",
		Title:     "Backend Engineer",
		Status:    status,
	})
	return job
}

func TestJobseekerService_Apply_Success(t *testing.T) {
	users, jobs, apps, saved := newStubUserRepo(), newStubJobRepo(), newStubAppRepo(), newStubSavedRepo()
	svc := NewJobseekerService(users, jobs, apps, saved)

	seeker := seedSeeker(users)
	job := seedJob(jobs, domain.JobPublished)

	app, err := svc.Apply(context.Background(), seeker.ID, job.ID, "I want this job")
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("expected PENDING, got %s", app.Status)
	}
	if app.SeekerID != seeker.ID || app.JobID != job.ID {
		t.Fatalf("unexpected application: %+v", app)
	}
}

func TestJobseekerService_Apply_Twice(t *testing.T) {
	users, jobs, apps, saved := newStubUserRepo(), newStubJobRepo(), newStubAppRepo(), newStubSavedRepo()
	svc := NewJobseekerService(users, jobs, apps, saved)

	seeker := seedSeeker(users)
	job := seedJob(jobs, domain.JobPublished)

	if _, err := svc.Apply(context.Background(), seeker.ID, job.ID, ""); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if _, err := svc.Apply(context.Background(), seeker.ID, job.ID, ""); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestJobseekerService_Apply_UnpublishedJob(t *testing.T) {
	users, jobs, apps, saved := newStubUserRepo(), newStubJobRepo(), newStubAppRepo(), newStubSavedRepo()
	svc := NewJobseekerService(users, jobs, apps, saved)

	seeker := seedSeeker(users)

	for _, status := range []domain.JobStatus{domain.JobDraft, domain.JobClosed} {
		job := seedJob(jobs, status)
		if _, err := svc.Apply(context.Background(), seeker.ID, job.ID, ""); !errors.Is(err, domain.ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound for %s job, got %v", status, err)
		}
	}
}

func TestJobseekerService_Apply_MissingJob(t *testing.T) {
	users, jobs, apps, saved := newStubUserRepo(), newStubJobRepo(), newStubAppRepo(), newStubSavedRepo()
	svc := NewJobseekerService(users, jobs, apps, saved)

	seeker := seedSeeker(users)
	if _, err := svc.Apply(context.Background(), seeker.ID, "missing", ""); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobseekerService_SaveJob_Twice(t *testing.T) {
	users, jobs, apps, saved := newStubUserRepo(), newStubJobRepo(), newStubAppRepo(), newStubSavedRepo()
	svc := NewJobseekerService(users, jobs, apps, saved)

	seeker := seedSeeker(users)
	job := seedJob(jobs, domain.JobPublished)

	if _, err := svc.SaveJob(context.Background(), seeker.ID, job.ID); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := svc.SaveJob(context.Background(), seeker.ID, job.ID); !errors.Is(err, domain.ErrJobAlreadySaved) {
		t.Fatalf("expected ErrJobAlreadySaved, got %v", err)
	}
}

func TestJobseekerService_Dashboard(t *testing.T) {
	users, jobs, apps, saved := newStubUserRepo(), newStubJobRepo(), newStubAppRepo(), newStubSavedRepo()
	svc := NewJobseekerService(users, jobs, apps, saved)

	seeker := seedSeeker(users)
	job := seedJob(jobs, domain.JobPublished)
	other := seedJob(jobs, domain.JobPublished)

	if _, err := svc.Apply(context.Background(), seeker.ID, job.ID, ""); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := svc.SaveJob(context.Background(), seeker.ID, other.ID); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	d, err := svc.Dashboard(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if d.SavedJobs != 1 {
		t.Fatalf("expected 1 saved job, got %d", d.SavedJobs)
	}
	if len(d.ApplicationsByStatus) != 1 || d.ApplicationsByStatus[0].Status != domain.ApplicationPending {
		t.Fatalf("unexpected status counts: %+v", d.ApplicationsByStatus)
	}
}

func TestJobseekerService_Skills(t *testing.T) {
	users, jobs, apps, saved := newStubUserRepo(), newStubJobRepo(), newStubAppRepo(), newStubSavedRepo()
	svc := NewJobseekerService(users, jobs, apps, saved)

	seeker := seedSeeker(users)

	skills, err := svc.AddSkill(context.Background(), seeker.ID, domain.Skill{Name: "Go", Level: "SENIOR"})
	if err != nil {
		t.Fatalf("AddSkill returned error: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "Go" {
		t.Fatalf("unexpected skills: %+v", skills)
	}

	// Duplicate names are rejected case-insensitively.
	var verr *domain.ValidationError
	if _, err := svc.AddSkill(context.Background(), seeker.ID, domain.Skill{Name: "go"}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	skills, err = svc.UpdateSkill(context.Background(), seeker.ID, "go", domain.Skill{Level: "EXPERT"})
	if err != nil {
		t.Fatalf("UpdateSkill returned error: %v", err)
	}
	if skills[0].Level != "EXPERT" {
		t.Fatalf("level not updated: %+v", skills)
	}

	if _, err := svc.RemoveSkill(context.Background(), seeker.ID, "Rust"); !errors.Is(err, domain.ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}

	skills, err = svc.RemoveSkill(context.Background(), seeker.ID, "Go")
	if err != nil {
		t.Fatalf("RemoveSkill returned error: %v", err)
	}
	if len(skills) != 0 {
		t.Fatalf("expected no skills, got %+v", skills)
	}
}
