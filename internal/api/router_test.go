package api

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"finanzas-ai/internal/api/handlers"
	"finanzas-ai/internal/llm"
	"finanzas-ai/internal/metrics"
	"finanzas-ai/internal/service"
	"finanzas-ai/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRouter(t *testing.T) *fiber.App {
	t.Helper()
	logger := zaptest.NewLogger(t)
	cfg := &config.AIConfig{ChatModel: "m", ReceiptModel: "m", ChatMaxTokens: 1024, ReceiptMaxTokens: 256}
	gen := llm.GeneratorFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		return &llm.Response{Content: []llm.ContentBlock{{Type: llm.BlockTypeText, Text: "hola"}}}, nil
	})

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := handlers.NewAIChatHandler(
		service.NewChatService(gen, cfg, logger),
		service.NewReceiptService(gen, cfg, logger),
		m,
		logger,
	)
	return SetupRouter(h, reg, &config.ServerConfig{}, logger)
}

func readBody(t *testing.T, app *fiber.App, method, path, body string) (int, string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, strings.NewReader(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw), resp.Header.Get(fiber.HeaderXRequestID)
}

func TestRouter_ChatRoutes(t *testing.T) {
	app := newTestRouter(t)

	for _, path := range []string{"/", "/functions/v1/ai-chat"} {
		status, body, requestID := readBody(t, app, "POST", path, `{"message":"hola"}`)
		assert.Equal(t, fiber.StatusOK, status, path)
		assert.JSONEq(t, `{"response":"hola"}`, body)
		assert.NotEmpty(t, requestID)
	}
}

func TestRouter_Health(t *testing.T) {
	app := newTestRouter(t)

	status, body, _ := readBody(t, app, "GET", "/health", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestRouter_Metrics(t *testing.T) {
	app := newTestRouter(t)
	_, _, _ = readBody(t, app, "POST", "/", `{"message":"hola"}`)

	status, body, _ := readBody(t, app, "GET", "/metrics", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `ai_chat_requests_total{mode="chat",status="ok"} 1`)
}

func TestRouter_NotFound(t *testing.T) {
	app := newTestRouter(t)

	status, body, _ := readBody(t, app, "GET", "/nope", "")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, `"error"`)
}
