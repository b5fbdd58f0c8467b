package handler

import (
	"net/http"

	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/schedule"
	"github.com/labstack/echo/v4"
)

func SetupTimetableRoutes(e *echo.Echo, generator *schedule.Generator) {
	e.POST("/api/timetable", GenerateTimetable(generator))
}

// GenerateTimetable godoc
// @Summary Generate a timetable
// @Description Greedily pick major and liberal sections that meet the credit targets without overlapping. A shortfall is reported in meta.success, not as an error.
// @Tags timetable
// @Accept json
// @Produce json
// @Param request body domain.SelectionRequest true "Selection request"
// @Success 200 {object} Response{data=domain.GenerationResult}
// @Failure 400 {object} Response
// @Failure 503 {object} Response
// @Router /timetable [post]
func GenerateTimetable(generator *schedule.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.SelectionRequest

		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}

		if err := c.Validate(&req); err != nil {
			return fail(c, http.StatusBadRequest, validationMessage(err))
		}

		result, err := generator.Generate(c.Request().Context(), req)
		if err != nil {
			return respondError(c, err)
		}

		return ok(c, result)
	}
}
