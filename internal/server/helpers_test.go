package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"newsdesk/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func TestParseIncVotes(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	var delta int
	var parseErr error
	app.Patch("/votes", func(c *fiber.Ctx) error {
		delta, parseErr = parseIncVotes(c)
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(body string) {
		req := httptest.NewRequest(http.MethodPatch, "/votes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		_, err := app.Test(req, -1)
		require.NoError(t, err)
	}

	t.Run("reads a signed delta", func(t *testing.T) {
		send(`{"inc_votes": -7}`)
		assert.NoError(t, parseErr)
		assert.Equal(t, -7, delta)
	})

	t.Run("missing key is a bad request", func(t *testing.T) {
		send(`{}`)
		var appErr *models.AppError
		require.True(t, errors.As(parseErr, &appErr))
		assert.Equal(t, fiber.StatusBadRequest, appErr.Status)
	})

	t.Run("non-numeric value is a bad request", func(t *testing.T) {
		send(`{"inc_votes": "lots"}`)
		var appErr *models.AppError
		require.True(t, errors.As(parseErr, &appErr))
		assert.Equal(t, fiber.StatusBadRequest, appErr.Status)
	})

	t.Run("extraneous keys are ignored", func(t *testing.T) {
		send(`{"inc_votes": 3, "body": "sneaky edit"}`)
		assert.NoError(t, parseErr)
		assert.Equal(t, 3, delta)
	})
}
