package handler

import (
	"errors"
	"net/http"

	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (customValidator *CustomValidator) Validate(i interface{}) error {
	if err := customValidator.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{Success: false, Message: message})
}

// respondError maps the error taxonomy onto HTTP statuses.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, utils.ErrInvalidRequest):
		return fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, utils.ErrNotFound):
		return fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, utils.ErrCatalogUnavailable):
		c.Logger().Errorf("catalog read failed: %v", err)
		return fail(c, http.StatusServiceUnavailable, "course catalog is unavailable")
	default:
		c.Logger().Errorf("unexpected error: %v", err)
		return fail(c, http.StatusInternalServerError, "internal server error")
	}
}

func validationMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
