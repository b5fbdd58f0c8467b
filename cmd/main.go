package main

import (
	"context"

	_ "github.com/gisung3253/kmu-back/docs"
	"github.com/gisung3253/kmu-back/internal/config"
	"github.com/gisung3253/kmu-back/internal/handler"
	"github.com/gisung3253/kmu-back/internal/middleware"
	"github.com/gisung3253/kmu-back/internal/repository/postgres"
	"github.com/gisung3253/kmu-back/internal/schedule"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title KMU Timetable API
// @version 1.0
// @description Generates weekly class timetables and recommends alternative sections

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api
// @schemes https http

func main() {
	cfg := config.Load()
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(e.Logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	e.Validator = handler.NewValidator()

	if cfg.DatabaseURL == "" {
		panic("DATABASE_URL not set")
	}

	storage, err := postgres.NewConnection(context.Background(), cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}
	defer storage.Close()

	opts := schedule.Options{MaxAttempts: cfg.MaxAttempts, RemoteQuota: cfg.RemoteQuota}
	generator := schedule.NewGenerator(storage, opts, e.Logger)
	resolver := schedule.NewResolver(storage, opts, e.Logger)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	handler.SetupHealthRoutes(e, storage)
	handler.SetupTimetableRoutes(e, generator)
	handler.SetupAlternativeRoutes(e, resolver)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
