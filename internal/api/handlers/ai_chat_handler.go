package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"finanzas-ai/internal/dto"
	"finanzas-ai/internal/metrics"
	"finanzas-ai/internal/models"
	"finanzas-ai/internal/service"
	"finanzas-ai/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler interface {
	HandleChat(ctx context.Context, message string, fc *models.FinancialContext, history models.History) (*dto.ChatResponse, error)
}

type ReceiptHandler interface {
	HandleReceiptParse(ctx context.Context, ocrText string) (*models.ReceiptExtraction, error)
}

type AIChatHandler struct {
	chat    ChatHandler
	receipt ReceiptHandler
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewAIChatHandler(chat ChatHandler, receipt ReceiptHandler, m *metrics.Metrics, logger *zap.Logger) *AIChatHandler {
	return &AIChatHandler{
		chat:    chat,
		receipt: receipt,
		metrics: m,
		logger:  logger,
	}
}

// Handle godoc
// @Summary Chat with Fina or parse receipt OCR text
// @Description mode "receipt-parse" extracts amount, merchant, date and category from ocr_text; any other mode answers message as the Fina assistant.
// @Tags ai-chat
// @Accept json
// @Produce json
// @Param request body models.AIChatRequest true "Chat or receipt-parse request"
// @Success 200 {object} dto.ChatResponse "chat mode; receipt-parse answers with dto.ReceiptParseResponse"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ReceiptParseErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /functions/v1/ai-chat [post]
func (h *AIChatHandler) Handle(c *fiber.Ctx) error {
	var req models.AIChatRequest
	// the body is JSON whatever the Content-Type says
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		h.metrics.ObserveRequest("unknown", metrics.StatusError)
		return fmt.Errorf("invalid request body: %w", err)
	}

	mode := models.ParseMode(req.Mode)
	c.Locals(middleware.LocalMode, string(mode))

	if mode == models.ModeReceiptParse {
		return h.handleReceipt(c, &req)
	}
	return h.handleChat(c, &req)
}

func (h *AIChatHandler) handleChat(c *fiber.Ctx, req *models.AIChatRequest) error {
	resp, err := h.chat.HandleChat(c.UserContext(), req.Message, req.FinancialContext, req.ConversationHistory)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.metrics.ObserveRequest(string(models.ModeChat), metrics.StatusValidationError)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Message})
		}
		h.metrics.ObserveRequest(string(models.ModeChat), metrics.StatusError)
		h.logger.Error("Chat request failed", zap.Error(err))
		return err
	}

	h.metrics.ObserveRequest(string(models.ModeChat), metrics.StatusOK)
	return c.JSON(resp)
}

func (h *AIChatHandler) handleReceipt(c *fiber.Ctx, req *models.AIChatRequest) error {
	mode := string(models.ModeReceiptParse)

	extraction, err := h.receipt.HandleReceiptParse(c.UserContext(), req.OCRText)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.metrics.ObserveRequest(mode, metrics.StatusValidationError)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ReceiptErrorResponse{
				Success: false,
				Error:   verr.Message,
			})
		}

		var perr *service.ParseError
		if errors.As(err, &perr) {
			h.metrics.ObserveRequest(mode, metrics.StatusParseError)
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ReceiptParseErrorResponse{
				Success: false,
				Error:   service.MsgParseFailed,
				Raw:     perr.Raw,
			})
		}

		h.metrics.ObserveRequest(mode, metrics.StatusError)
		h.logger.Error("Receipt parse request failed", zap.Error(err))
		return err
	}

	h.metrics.ObserveRequest(mode, metrics.StatusOK)
	return c.JSON(dto.NewReceiptParseResponse(extraction))
}
