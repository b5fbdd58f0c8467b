package handler

import (
	"net/http"

	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/schedule"
	"github.com/labstack/echo/v4"
)

func SetupAlternativeRoutes(e *echo.Echo, resolver *schedule.Resolver) {
	e.GET("/api/alternatives", GetAlternatives(resolver))
	e.POST("/api/alternatives/timetable", RecommendAlternativeTimetable(resolver))
}

// GetAlternatives godoc
// @Summary Get alternative sections
// @Description Find other sections of the same course meeting in the same first slot
// @Tags alternatives
// @Produce json
// @Param code query string true "Course code"
// @Success 200 {object} Response{data=domain.AlternativeSet}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 503 {object} Response
// @Router /alternatives [get]
func GetAlternatives(resolver *schedule.Resolver) echo.HandlerFunc {
	return func(c echo.Context) error {
		code := c.QueryParam("code")
		if code == "" {
			return fail(c, http.StatusBadRequest, "query parameter 'code' is required")
		}

		set, err := resolver.FindAlternatives(c.Request().Context(), code)
		if err != nil {
			return respondError(c, err)
		}

		return ok(c, set)
	}
}

// RecommendAlternativeTimetable godoc
// @Summary Recommend an alternative timetable
// @Description Replace each physical liberal section with the next-ranked same-area section that fits; majors and remote sections are kept
// @Tags alternatives
// @Accept json
// @Produce json
// @Param request body domain.RecommendRequest true "Codes of the current timetable"
// @Success 200 {object} Response{data=domain.Timetable}
// @Failure 400 {object} Response
// @Failure 503 {object} Response
// @Router /alternatives/timetable [post]
func RecommendAlternativeTimetable(resolver *schedule.Resolver) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.RecommendRequest

		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}

		if err := c.Validate(&req); err != nil {
			return fail(c, http.StatusBadRequest, validationMessage(err))
		}

		timetable, err := resolver.RecommendAlternativeTimetable(c.Request().Context(), req.Codes)
		if err != nil {
			return respondError(c, err)
		}

		return ok(c, timetable)
	}
}
