package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the catalog backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func SetupHealthRoutes(e *echo.Echo, catalog Pinger) {
	e.GET("/", Health(catalog))
}

// Health godoc
// @Summary Service status
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router / [get]
func Health(catalog Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := catalog.Ping(c.Request().Context()); err != nil {
			c.Logger().Warnf("health check: %v", err)
			return fail(c, http.StatusServiceUnavailable, "course catalog is unavailable")
		}

		return c.JSON(http.StatusOK, Response{Success: true, Message: "KMU Timetable API Server is running"})
	}
}
