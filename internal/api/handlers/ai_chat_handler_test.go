package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"finanzas-ai/internal/dto"
	"finanzas-ai/internal/llm"
	"finanzas-ai/internal/metrics"
	"finanzas-ai/internal/models"
	"finanzas-ai/internal/service"
	"finanzas-ai/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubChat struct {
	resp *dto.ChatResponse
	err  error
	got  models.History
}

func (s *stubChat) HandleChat(_ context.Context, _ string, _ *models.FinancialContext, history models.History) (*dto.ChatResponse, error) {
	s.got = history
	return s.resp, s.err
}

// newTestApp wires the handler like SetupRouter does, without swagger.
func newTestApp(t *testing.T, gen llm.Generator) (*fiber.App, *metrics.Metrics) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	cfg := &config.AIConfig{
		Provider:         config.ProviderAnthropic,
		ChatModel:        "claude-sonnet-4-20250514",
		ReceiptModel:     "claude-3-5-haiku-20241022",
		ChatMaxTokens:    1024,
		ReceiptMaxTokens: 256,
	}
	m := metrics.New(prometheus.NewRegistry())
	h := NewAIChatHandler(
		service.NewChatService(gen, cfg, logger),
		service.NewReceiptService(gen, cfg, logger),
		m,
		logger,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Post("/", h.Handle)
	return app, m
}

func replyWith(text string) llm.Generator {
	return llm.GeneratorFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		return &llm.Response{Content: []llm.ContentBlock{{Type: llm.BlockTypeText, Text: text}}}, nil
	})
}

func post(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func TestHandle_Chat(t *testing.T) {
	app, m := newTestApp(t, replyWith("Hola, soy Fina."))

	status, body := post(t, app, `{"message":"hola"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]any{"response": "Hola, soy Fina."}, body)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("chat", metrics.StatusOK)))
}

func TestHandle_ChatUnknownModeFallsBack(t *testing.T) {
	app, _ := newTestApp(t, replyWith("ok"))

	status, body := post(t, app, `{"mode":"resumen","message":"hola"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["response"])
}

func TestHandle_ChatMissingMessage(t *testing.T) {
	app, _ := newTestApp(t, replyWith("unused"))

	status, body := post(t, app, `{"mode":"chat"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"error": "Message is required"}, body)
}

func TestHandle_ReceiptMissingOCRText(t *testing.T) {
	app, _ := newTestApp(t, replyWith("unused"))

	status, body := post(t, app, `{"mode":"receipt-parse","ocr_text":"  "}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"success": false, "error": "OCR text is required"}, body)
}

func TestHandle_ReceiptParsed(t *testing.T) {
	app, _ := newTestApp(t, replyWith(`{"amount":45000,"merchant":"Éxito"}`))

	status, body := post(t, app, `{"mode":"receipt-parse","ocr_text":"EXITO TOTAL 45.000"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]any{
		"success":    true,
		"amount":     45000.0,
		"merchant":   "Éxito",
		"date":       nil,
		"category":   nil,
		"confidence": 0.8,
	}, body)
}

func TestHandle_ReceiptUnparseable(t *testing.T) {
	app, m := newTestApp(t, replyWith("not json"))

	status, body := post(t, app, `{"mode":"receipt-parse","ocr_text":"EXITO TOTAL 45.000"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, map[string]any{
		"success": false,
		"error":   "Could not parse AI response",
		"raw":     "not json",
	}, body)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("receipt-parse", metrics.StatusParseError)))
}

func TestHandle_ProviderFailure(t *testing.T) {
	gen := llm.GeneratorFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		return nil, &llm.ProviderError{Provider: "anthropic", Op: "check_api_response", StatusCode: 401, Err: errors.New("authentication_error: invalid x-api-key")}
	})
	app, _ := newTestApp(t, gen)

	for _, body := range []string{`{"message":"hola"}`, `{"mode":"receipt-parse","ocr_text":"TOTAL 1.000"}`} {
		status, out := post(t, app, body)
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Contains(t, out["error"], "invalid x-api-key")
		assert.NotContains(t, out, "success")
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	app, _ := newTestApp(t, replyWith("unused"))

	status, body := post(t, app, `{"message":`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body["error"], "invalid request body")
}

func TestHandle_HistoryPassedThrough(t *testing.T) {
	logger := zaptest.NewLogger(t)
	chat := &stubChat{resp: &dto.ChatResponse{Response: "ok"}}
	h := NewAIChatHandler(chat, nil, nil, logger)
	app := fiber.New()
	app.Post("/", h.Handle)

	status, _ := post(t, app, `{"message":"hola","conversation_history":[{"role":"model","content":"x"}]}`)

	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, chat.got, 1)
	assert.Equal(t, llm.RoleAssistant, chat.got[0].Role)
}
