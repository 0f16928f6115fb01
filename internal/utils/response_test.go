package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeFor(t *testing.T, handler fiber.Handler) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestSuccessResponseEnvelope(t *testing.T) {
	status, body := envelopeFor(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status": "success", "code": 200, "message": "Movie deleted successfully"}`, body)
}

func TestErrorResponseEnvelope(t *testing.T) {
	status, body := envelopeFor(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"status": "error", "code": 404, "message": "Movie not found"}`, body)
}

func TestErrorResponseServerFailureStatus(t *testing.T) {
	status, body := envelopeFor(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusInternalServerError, "Statistics unavailable")
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.JSONEq(t, `{"status": "fail", "code": 500, "message": "Statistics unavailable"}`, body)
}
