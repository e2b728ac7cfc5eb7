package service

import (
	"context"
	"fmt"
	"strings"

	"finanzas-ai/internal/llm"
	"finanzas-ai/internal/models"
	"finanzas-ai/pkg/config"

	"go.uber.org/zap"
)

// emptyReply stands in for a provider reply without any text block.
const emptyReply = "{}"

type ReceiptService struct {
	generator llm.Generator
	model     string
	maxTokens int
	logger    *zap.Logger
}

func NewReceiptService(generator llm.Generator, cfg *config.AIConfig, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		generator: generator,
		model:     cfg.ReceiptModel,
		maxTokens: cfg.ReceiptMaxTokens,
		logger:    logger,
	}
}

// HandleReceiptParse extracts total, merchant, date and category from
// OCR text of a Colombian receipt.
func (s *ReceiptService) HandleReceiptParse(ctx context.Context, ocrText string) (*models.ReceiptExtraction, error) {
	if strings.TrimSpace(ocrText) == "" {
		return nil, &ValidationError{Field: "ocr_text", Message: MsgOCRTextRequired}
	}

	resp, err := s.generator.Generate(ctx, llm.Request{
		Model:     s.model,
		System:    receiptParsePrompt,
		MaxTokens: s.maxTokens,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: receiptUserPrefix + ocrText},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("receipt extraction failed: %w", err)
	}

	text, ok := resp.FirstText()
	if !ok {
		s.logger.Debug("Receipt reply has no text block",
			zap.String("model", s.model),
			zap.Strings("block_types", resp.BlockTypes()),
		)
		text = emptyReply
	}

	extraction, err := parseReceiptReply(text)
	if err != nil {
		s.logger.Warn("Receipt reply is not valid JSON",
			zap.String("model", s.model),
			zap.Int("reply_length", len(text)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Receipt parsed",
		zap.String("model", s.model),
		zap.Int("ocr_length", len(ocrText)),
		zap.Bool("has_amount", extraction.Amount != nil),
		zap.Float64("confidence", extraction.Confidence),
	)
	return extraction, nil
}
