package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/admitboard/admitboard-api/internal/dto"
	"github.com/admitboard/admitboard-api/internal/handler"
	"github.com/admitboard/admitboard-api/internal/service"
	"github.com/admitboard/admitboard-api/internal/store"
)

func newReportApp(mock *mockReportService) *fiber.App {
	app := fiber.New()
	h := handler.NewReportHandler(mock, testLogger())
	h.Register(app.Group("/api/reports"))
	return app
}

func TestReportIndex(t *testing.T) {
	mock := &mockReportService{descriptors: []dto.ReportDescriptor{
		{Key: "1", Title: "List all institution names and their accreditation status, ordered by name"},
		{Key: "2", Title: "List all open programs sorted alphabetically"},
	}}
	app := newReportApp(mock)

	resp, body := performRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/reports", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Success)

	descriptors, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, descriptors, 2)
}

func TestReportRun(t *testing.T) {
	mock := &mockReportService{rows: []store.Row{
		{"status": "Completed", "application_count": float64(2)},
		{"status": "Submitted", "application_count": float64(1)},
	}}
	app := newReportApp(mock)

	resp, body := performRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/reports/8", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Success)
	require.Equal(t, "8", mock.lastKey)

	rows, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, rows, 2)
}

func TestReportRunUnknownKey(t *testing.T) {
	mock := &mockReportService{err: service.ErrReportNotFound}
	app := newReportApp(mock)

	resp, body := performRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/reports/99", nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "report not found", body.Message)
}

func TestReportRunExecutionFailure(t *testing.T) {
	mock := &mockReportService{err: errors.New("view missing")}
	app := newReportApp(mock)

	resp, body := performRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/reports/17", nil))
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "report execution failed", body.Message)
}
