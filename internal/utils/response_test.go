package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/admitboard/admitboard-api/internal/utils"
)

func perform(t *testing.T, handler fiber.Handler) (*http.Response, utils.APIResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var body utils.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestSendSuccess(t *testing.T) {
	resp, body := perform(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "rows retrieved", []string{"a", "b"})
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Success)
	require.Equal(t, "rows retrieved", body.Message)
	require.NotNil(t, body.Data)
}

func TestSendSuccessDefaultMessage(t *testing.T) {
	_, body := perform(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "", nil)
	})

	require.Equal(t, "success", body.Message)
	require.Nil(t, body.Data)
}

func TestSendError(t *testing.T) {
	resp, body := perform(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, http.StatusConflict, "constraint violated")
	})

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.False(t, body.Success)
	require.Equal(t, "constraint violated", body.Message)
	require.Nil(t, body.Data)
}

func TestSendErrorDefaultMessage(t *testing.T) {
	resp, body := perform(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, http.StatusInternalServerError, "")
	})

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "error", body.Message)
}
