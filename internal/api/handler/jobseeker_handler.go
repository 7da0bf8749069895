package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/api/metrics"
	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

// JobseekerHandler exposes jobseeker endpoints: profile, job search,
// applications, saved jobs and skills.
type JobseekerHandler struct {
	seeker ports.JobseekerService
}

func NewJobseekerHandler(seeker ports.JobseekerService) *JobseekerHandler {
	return &JobseekerHandler{seeker: seeker}
}

// Dashboard handles GET /api/jobseeker/dashboard.
func (h *JobseekerHandler) Dashboard(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	dashboard, err := h.seeker.Dashboard(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dashboard)
}

// Profile handles GET /api/jobseeker/profile.
func (h *JobseekerHandler) Profile(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	profile, err := h.seeker.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"profile": profile})
}

type profileRequest struct {
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Phone     string         `json:"phone"`
	Location  string         `json:"location"`
	Bio       string         `json:"bio"`
	Skills    []domain.Skill `json:"skills"`
}

// UpdateProfile handles PUT /api/jobseeker/profile.
func (h *JobseekerHandler) UpdateProfile(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.seeker.UpdateProfile(c.Request().Context(), identity.ID, domain.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Location:  req.Location,
		Bio:       req.Bio,
		Skills:    req.Skills,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"profile": profile})
}

// SearchJobs handles GET /api/jobseeker/jobs over published postings.
func (h *JobseekerHandler) SearchJobs(c echo.Context) error {
	page, limit := pageParams(c)
	jobs, pagination, err := h.seeker.SearchJobs(c.Request().Context(), ports.JobSearch{
		Title:           c.QueryParam("title"),
		Location:        c.QueryParam("location"),
		JobType:         c.QueryParam("job_type"),
		ExperienceLevel: c.QueryParam("experience_level"),
		CategoryID:      c.QueryParam("category_id"),
		Page:            page,
		Limit:           limit,
	})
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, echo.Map{"jobs": jobs}, pagination)
}

// ListApplications handles GET /api/jobseeker/applications.
func (h *JobseekerHandler) ListApplications(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	page, limit := pageParams(c)
	applications, pagination, err := h.seeker.ListApplications(c.Request().Context(), identity.ID, page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, echo.Map{"applications": applications}, pagination)
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// Apply handles POST /api/jobseeker/jobs/:jobId/apply.
func (h *JobseekerHandler) Apply(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	application, err := h.seeker.Apply(c.Request().Context(), identity.ID, c.Param("jobId"), req.CoverLetter)
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return respond(c, http.StatusCreated, echo.Map{"application": application})
}

// GetApplication handles GET /api/jobseeker/applications/:id.
func (h *JobseekerHandler) GetApplication(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	detail, err := h.seeker.ApplicationDetails(c.Request().Context(), identity.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, detail)
}

// ListSavedJobs handles GET /api/jobseeker/saved-jobs.
func (h *JobseekerHandler) ListSavedJobs(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	jobs, err := h.seeker.ListSavedJobs(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"jobs": jobs})
}

// SaveJob handles POST /api/jobseeker/saved-jobs/:jobId.
func (h *JobseekerHandler) SaveJob(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	saved, err := h.seeker.SaveJob(c.Request().Context(), identity.ID, c.Param("jobId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, echo.Map{"saved_job": saved})
}

// UnsaveJob handles DELETE /api/jobseeker/saved-jobs/:jobId.
func (h *JobseekerHandler) UnsaveJob(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.seeker.UnsaveJob(c.Request().Context(), identity.ID, c.Param("jobId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSkills handles GET /api/jobseeker/skills.
func (h *JobseekerHandler) ListSkills(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	skills, err := h.seeker.ListSkills(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"skills": skills})
}

type skillRequest struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level"`
}

// AddSkill handles POST /api/jobseeker/skills.
func (h *JobseekerHandler) AddSkill(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	skills, err := h.seeker.AddSkill(c.Request().Context(), identity.ID, domain.Skill{
		Name:  req.Name,
		Level: req.Level,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, echo.Map{"skills": skills})
}

type skillUpdateRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// UpdateSkill handles PUT /api/jobseeker/skills/:name.
func (h *JobseekerHandler) UpdateSkill(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req skillUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	skills, err := h.seeker.UpdateSkill(c.Request().Context(), identity.ID, c.Param("name"), domain.Skill{
		Name:  req.Name,
		Level: req.Level,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"skills": skills})
}

// RemoveSkill handles DELETE /api/jobseeker/skills/:name.
func (h *JobseekerHandler) RemoveSkill(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}
	skills, err := h.seeker.RemoveSkill(c.Request().Context(), identity.ID, c.Param("name"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"skills": skills})
}
