package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/admitboard/admitboard-api/internal/dto"
	"github.com/admitboard/admitboard-api/internal/store"
	"github.com/admitboard/admitboard-api/internal/utils"
)

type mockTableService struct {
	infos    []dto.TableInfo
	rows     []store.Row
	insertID int64
	err      error

	lastKey    string
	lastFields map[string]any
	lastID     int64
}

func (m *mockTableService) Describe() []dto.TableInfo {
	return m.infos
}

func (m *mockTableService) List(_ context.Context, key string) ([]store.Row, error) {
	m.lastKey = key
	return m.rows, m.err
}

func (m *mockTableService) Insert(_ context.Context, key string, fields map[string]any) (int64, error) {
	m.lastKey = key
	m.lastFields = fields
	return m.insertID, m.err
}

func (m *mockTableService) Delete(_ context.Context, key string, id int64) error {
	m.lastKey = key
	m.lastID = id
	return m.err
}

type mockReportService struct {
	descriptors []dto.ReportDescriptor
	rows        []store.Row
	err         error
	lastKey     string
}

func (m *mockReportService) Describe() []dto.ReportDescriptor {
	return m.descriptors
}

func (m *mockReportService) Run(_ context.Context, key string) ([]store.Row, error) {
	m.lastKey = key
	return m.rows, m.err
}

type mockAdminService struct {
	err       error
	lastToken string
}

func (m *mockAdminService) Reset(_ context.Context, token string) error {
	m.lastToken = token
	return m.err
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func performRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, utils.APIResponse) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var body utils.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}
