package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_FillsDefaultMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return Error(c, fiber.StatusTooManyRequests, "", fiber.Map{"retry_after": 3})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var got SemanticResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, MessageTooManyRequests, got.Message)
	assert.Equal(t, fiber.StatusTooManyRequests, got.Status)
}

func TestSuccess_InvalidStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return Success(c, 42, "", nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestDefaultMessage(t *testing.T) {
	assert.Equal(t, MessageOK, DefaultMessage(200))
	assert.Equal(t, MessageError, DefaultMessage(418))
	assert.Equal(t, MessageServiceUnavailable, DefaultMessage(503))
	assert.Equal(t, MessageInternalServerError, DefaultMessage(504))
}
