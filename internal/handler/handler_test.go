package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/repository/csvstore"
	"github.com/gisung3253/kmu-back/internal/schedule"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	logger := log.New("test")
	logger.SetOutput(io.Discard)
	return logger
}

func testCatalog() *csvstore.Store {
	at := func(day, start, end string) []domain.MeetingTime {
		return []domain.MeetingTime{{Day: day, Start: start, End: end}}
	}
	return csvstore.New([]domain.Section{
		{Code: "CS201-01", Name: "Data Structures", Department: "Computer Science", Grade: 2, Semester: 1, Credit: 3, Weight: 90, MeetingTimes: at("Mon", "09:00", "10:30")},
		{Code: "CS201-02", Name: "Data Structures", Department: "Computer Science", Grade: 2, Semester: 1, Credit: 3, Weight: 80, MeetingTimes: at("Mon", "09:00", "10:30")},
		{Code: "CS202-01", Name: "Discrete Math", Department: "Computer Science", Grade: 2, Semester: 1, Credit: 3, Weight: 70, MeetingTimes: at("Tue", "09:00", "10:30")},
	}, []domain.Section{
		{Code: "LE300-01", Name: "Applied Ethics", Area: "Ethics", Credit: 3, Ranking: 1, MeetingTimes: at("Wed", "09:00", "10:30")},
		{Code: "LE301-01", Name: "Ethics Online", Area: "Ethics", Credit: 3, Ranking: 2, MeetingTimes: []domain.MeetingTime{{Day: domain.RemoteDay}}},
		{Code: "LE305-01", Name: "Ethics of AI", Area: "Ethics", Credit: 3, Ranking: 3, MeetingTimes: at("Thu", "09:00", "10:30")},
	})
}

func newServer() *echo.Echo {
	e := echo.New()
	e.Logger = quietLogger()
	e.Validator = NewValidator()

	catalog := testCatalog()
	SetupTimetableRoutes(e, schedule.NewGenerator(catalog, schedule.DefaultOptions(), e.Logger))
	SetupAlternativeRoutes(e, schedule.NewResolver(catalog, schedule.DefaultOptions(), e.Logger))
	return e
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func serve[T any](t *testing.T, e *echo.Echo, method, target, body string) (int, envelope[T]) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	var out envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestGenerateTimetable(t *testing.T) {
	e := newServer()

	t.Run("generates", func(t *testing.T) {
		status, res := serve[domain.GenerationResult](t, e, http.MethodPost, "/api/timetable",
			`{"department":"Computer Science","grade":2,"semester":1,"majorCredits":6,"liberalCredits":6,"liberalAreas":["Ethics","remote-preferred"]}`)

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, res.Success)
		assert.True(t, res.Data.Meta.Success)
		assert.Len(t, res.Data.Offline.Major, 2)
		assert.Equal(t, "LE301-01", res.Data.Online.Liberal[0].Code)
		assert.Equal(t, map[string]int{"Ethics": 2}, res.Data.Meta.AreaDistribution)
	})

	t.Run("partial result is still a 200", func(t *testing.T) {
		status, res := serve[domain.GenerationResult](t, e, http.MethodPost, "/api/timetable",
			`{"department":"Computer Science","grade":2,"semester":1,"majorCredits":12,"liberalCredits":0,"liberalAreas":[]}`)

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, res.Success)
		assert.False(t, res.Data.Meta.Success)
		assert.Equal(t, 6, res.Data.Meta.ActualMajorCredits)
	})

	t.Run("missing field", func(t *testing.T) {
		status, res := serve[any](t, e, http.MethodPost, "/api/timetable",
			`{"department":"Computer Science","grade":2,"semester":1,"liberalCredits":6,"liberalAreas":["Ethics"]}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, res.Success)
		assert.Contains(t, res.Message, "MajorCredits")
	})

	t.Run("areas required for liberal credits", func(t *testing.T) {
		status, res := serve[any](t, e, http.MethodPost, "/api/timetable",
			`{"department":"Computer Science","grade":2,"semester":1,"majorCredits":3,"liberalCredits":6,"liberalAreas":["remote-preferred"]}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, res.Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		status, res := serve[any](t, e, http.MethodPost, "/api/timetable", `{"department":`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid request body", res.Message)
	})
}

func TestGetAlternatives(t *testing.T) {
	e := newServer()

	t.Run("found", func(t *testing.T) {
		status, res := serve[domain.AlternativeSet](t, e, http.MethodGet, "/api/alternatives?code=CS201-01", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "CS201-01", res.Data.Current.Code)
		require.Len(t, res.Data.Alternatives, 1)
		assert.Equal(t, "CS201-02", res.Data.Alternatives[0].Code)
	})

	t.Run("not found", func(t *testing.T) {
		status, res := serve[any](t, e, http.MethodGet, "/api/alternatives?code=NOPE-01", "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.False(t, res.Success)
	})

	t.Run("missing code", func(t *testing.T) {
		status, _ := serve[any](t, e, http.MethodGet, "/api/alternatives", "")

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestRecommendAlternativeTimetable(t *testing.T) {
	e := newServer()

	t.Run("recommends", func(t *testing.T) {
		status, res := serve[domain.Timetable](t, e, http.MethodPost, "/api/alternatives/timetable",
			`{"codes":["CS201-01","LE300-01","LE301-01"]}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "CS201-01", res.Data.Offline.Major[0].Code)
		assert.Equal(t, "LE305-01", res.Data.Offline.Liberal[0].Code)
		assert.Equal(t, "LE301-01", res.Data.Online.Liberal[0].Code)
	})

	t.Run("codes must be a list", func(t *testing.T) {
		status, _ := serve[any](t, e, http.MethodPost, "/api/alternatives/timetable", `{"codes":"CS201-01"}`)
		assert.Equal(t, http.StatusBadRequest, status)

		status, _ = serve[any](t, e, http.MethodPost, "/api/alternatives/timetable", `{"codes":[]}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	e := echo.New()
	e.Logger = quietLogger()
	SetupHealthRoutes(e, pinger{})

	status, res := serve[any](t, e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, res.Success)

	down := echo.New()
	down.Logger = quietLogger()
	SetupHealthRoutes(down, pinger{err: errors.New("connection refused")})

	status, res = serve[any](t, down, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.False(t, res.Success)
}
