package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/core/ports"
)

// successResponse is the standard success envelope.
type successResponse struct {
	Status     string      `json:"status"`
	Data       any         `json:"data,omitempty"`
	Pagination *ports.Page `json:"pagination,omitempty"`
}

// respond writes the standard success envelope.
func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, successResponse{Status: "success", Data: data})
}

// respondPage writes the standard success envelope with a pagination block.
func respondPage(c echo.Context, code int, data any, page ports.Page) error {
	return c.JSON(code, successResponse{Status: "success", Data: data, Pagination: &page})
}

// pageParams reads ?page= and ?limit= with the conventional defaults.
func pageParams(c echo.Context) (page, limit int) {
	page = intQuery(c, "page", 1)
	limit = intQuery(c, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func intQuery(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
