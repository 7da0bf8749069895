package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/api/metrics"
	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

// RecruiterHandler exposes recruiter endpoints: company profile, jobs,
// candidates and analytics.
type RecruiterHandler struct {
	recruiter ports.RecruiterService
}

func NewRecruiterHandler(recruiter ports.RecruiterService) *RecruiterHandler {
	return &RecruiterHandler{recruiter: recruiter}
}

// Dashboard handles GET /api/recruiter/dashboard.
func (h *RecruiterHandler) Dashboard(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	dashboard, err := h.recruiter.Dashboard(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dashboard)
}

// CompanyProfile handles GET /api/recruiter/company-profile.
func (h *RecruiterHandler) CompanyProfile(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	company, err := h.recruiter.CompanyProfile(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"company": company})
}

type companyProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	IndustryID  string `json:"industry_id"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// UpdateCompanyProfile handles PUT /api/recruiter/company-profile.
func (h *RecruiterHandler) UpdateCompanyProfile(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req companyProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	company, err := h.recruiter.UpdateCompanyProfile(c.Request().Context(), identity.ID, ports.CompanyProfileInput{
		Name:        req.Name,
		IndustryID:  req.IndustryID,
		Industry:    req.Industry,
		Size:        req.Size,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"company": company})
}

// ListJobs handles GET /api/recruiter/jobs.
func (h *RecruiterHandler) ListJobs(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	jobs, err := h.recruiter.ListJobs(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"jobs": jobs})
}

type jobRequest struct {
	Title           string   `json:"title"       validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryMin       int      `json:"salary_min"`
	SalaryMax       int      `json:"salary_max"`
	CategoryID      string   `json:"category_id"`
	IndustryID      string   `json:"industry_id"`
	RequiredSkills  []string `json:"required_skills"`
	Status          string   `json:"status"`
}

func (r jobRequest) input() ports.JobInput {
	return ports.JobInput{
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		JobType:         r.JobType,
		ExperienceLevel: r.ExperienceLevel,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		CategoryID:      r.CategoryID,
		IndustryID:      r.IndustryID,
		RequiredSkills:  r.RequiredSkills,
		Status:          domain.JobStatus(r.Status),
	}
}

// CreateJob handles POST /api/recruiter/jobs.
func (h *RecruiterHandler) CreateJob(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.recruiter.CreateJob(c.Request().Context(), identity.ID, req.input())
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(job.Status)).Inc()
	return respond(c, http.StatusCreated, echo.Map{"job": job})
}

// GetJob handles GET /api/recruiter/jobs/:id.
func (h *RecruiterHandler) GetJob(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	job, err := h.recruiter.JobDetails(c.Request().Context(), identity.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"job": job})
}

// UpdateJob handles PUT /api/recruiter/jobs/:id.
func (h *RecruiterHandler) UpdateJob(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.recruiter.UpdateJob(c.Request().Context(), identity.ID, c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"job": job})
}

// DeleteJob handles DELETE /api/recruiter/jobs/:id.
func (h *RecruiterHandler) DeleteJob(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.recruiter.DeleteJob(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCandidates handles GET /api/recruiter/candidates.
func (h *RecruiterHandler) ListCandidates(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	page, limit := pageParams(c)
	candidates, pagination, err := h.recruiter.ListCandidates(c.Request().Context(), identity.ID, page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, echo.Map{"candidates": candidates}, pagination)
}

// GetCandidate handles GET /api/recruiter/candidates/:id.
func (h *RecruiterHandler) GetCandidate(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	candidate, err := h.recruiter.CandidateDetails(c.Request().Context(), identity.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"candidate": candidate})
}

type candidateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateCandidateStatus handles PUT /api/recruiter/candidates/:id/status.
func (h *RecruiterHandler) UpdateCandidateStatus(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req candidateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	application, err := h.recruiter.UpdateCandidateStatus(
		c.Request().Context(), identity.ID, c.Param("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"application": application})
}

// Analytics handles GET /api/recruiter/analytics.
func (h *RecruiterHandler) Analytics(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	analytics, err := h.recruiter.Analytics(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, analytics)
}
