package middleware

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Post("/", func(c *fiber.Ctx) error {
		c.Locals(LocalMode, "chat")
		return c.SendString("ok")
	})
	app.Post("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	body := `{"message":"mi saldo secreto"}`
	resp, err := app.Test(httptest.NewRequest("POST", "/", strings.NewReader(body)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "chat", ok["mode"])
	assert.EqualValues(t, len(body), ok["request_size"])
	for _, v := range ok {
		s, isString := v.(string)
		assert.False(t, isString && strings.Contains(s, "secreto"), "body leaked into log")
	}

	failed := entries[1].ContextMap()
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.EqualValues(t, fiber.StatusInternalServerError, failed["status"])
}
