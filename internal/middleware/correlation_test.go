package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/admitboard/admitboard-api/internal/middleware"
)

func newCorrelationApp(captured *string) *fiber.App {
	app := fiber.New()
	app.Use(middleware.CorrelationID())
	app.Get("/", func(c *fiber.Ctx) error {
		*captured = middleware.GetCorrelationID(c)
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestCorrelationIDGenerated(t *testing.T) {
	var captured string
	app := newCorrelationApp(&captured)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	header := resp.Header.Get("X-Correlation-ID")
	require.NotEmpty(t, header)
	require.Equal(t, header, captured)

	_, err = uuid.Parse(header)
	require.NoError(t, err)
}

func TestCorrelationIDPropagated(t *testing.T) {
	var captured string
	app := newCorrelationApp(&captured)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "req-123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "req-123", resp.Header.Get("X-Correlation-ID"))
	require.Equal(t, "req-123", captured)
}

func TestCorrelationIDFallsBackToRequestID(t *testing.T) {
	var captured string
	app := newCorrelationApp(&captured)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-456")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "req-456", captured)
}
