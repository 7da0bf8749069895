package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

// AdminHandler exposes platform administration endpoints.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.admin.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dashboard)
}

// ListUsers handles GET /api/admin/users with role/status filters.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, limit := pageParams(c)
	users, pagination, err := h.admin.ListUsers(c.Request().Context(), ports.UserFilter{
		Role:   domain.Role(c.QueryParam("role")),
		Status: domain.UserStatus(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, echo.Map{"users": users}, pagination)
}

// GetUser handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.admin.UserDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"user": user})
}

type updateUserStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateUserStatus handles PUT /api/admin/users/:id/status.
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	var req updateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.admin.UpdateUserStatus(c.Request().Context(), c.Param("id"), domain.UserStatus(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"user": user})
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.admin.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCategories handles GET /api/admin/categories.
func (h *AdminHandler) ListCategories(c echo.Context) error {
	categories, err := h.admin.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"categories": categories})
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// CreateCategory handles POST /api/admin/categories.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.admin.CreateCategory(c.Request().Context(), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, echo.Map{"category": category})
}

// UpdateCategory handles PUT /api/admin/categories/:id.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.admin.UpdateCategory(c.Request().Context(), c.Param("id"), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"category": category})
}

// DeleteCategory handles DELETE /api/admin/categories/:id.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	if err := h.admin.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type industryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ListIndustries handles GET /api/admin/industries.
func (h *AdminHandler) ListIndustries(c echo.Context) error {
	industries, err := h.admin.ListIndustries(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"industries": industries})
}

// CreateIndustry handles POST /api/admin/industries.
func (h *AdminHandler) CreateIndustry(c echo.Context) error {
	var req industryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	industry, err := h.admin.CreateIndustry(c.Request().Context(), ports.IndustryInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, echo.Map{"industry": industry})
}

// UpdateIndustry handles PUT /api/admin/industries/:id.
func (h *AdminHandler) UpdateIndustry(c echo.Context) error {
	var req industryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	industry, err := h.admin.UpdateIndustry(c.Request().Context(), c.Param("id"), ports.IndustryInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"industry": industry})
}

// DeleteIndustry handles DELETE /api/admin/industries/:id.
func (h *AdminHandler) DeleteIndustry(c echo.Context) error {
	if err := h.admin.DeleteIndustry(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Analytics handles GET /api/admin/analytics?range=7d|30d|90d|1y.
func (h *AdminHandler) Analytics(c echo.Context) error {
	analytics, err := h.admin.Analytics(c.Request().Context(), c.QueryParam("range"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, analytics)
}
