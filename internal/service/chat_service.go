package service

import (
	"context"
	"fmt"

	"finanzas-ai/internal/dto"
	"finanzas-ai/internal/llm"
	"finanzas-ai/internal/models"
	"finanzas-ai/pkg/config"

	"go.uber.org/zap"
)

type ChatService struct {
	generator llm.Generator
	model     string
	maxTokens int
	logger    *zap.Logger
}

func NewChatService(generator llm.Generator, cfg *config.AIConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		generator: generator,
		model:     cfg.ChatModel,
		maxTokens: cfg.ChatMaxTokens,
		logger:    logger,
	}
}

// HandleChat answers one user message as the Fina persona. Prior turns
// are replayed in order before the new message.
func (s *ChatService) HandleChat(
	ctx context.Context,
	message string,
	financialContext *models.FinancialContext,
	history models.History,
) (*dto.ChatResponse, error) {
	if message == "" {
		return nil, &ValidationError{Field: "message", Message: MsgMessageRequired}
	}

	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := s.generator.Generate(ctx, llm.Request{
		Model:     s.model,
		System:    buildSystemInstruction(financialContext),
		MaxTokens: s.maxTokens,
		Messages:  messages,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	text, ok := resp.FirstText()
	if !ok {
		s.logger.Debug("Chat reply has no text block",
			zap.String("model", s.model),
			zap.Strings("block_types", resp.BlockTypes()),
		)
	}

	s.logger.Info("Chat completed",
		zap.String("model", s.model),
		zap.Int("history_turns", len(history)),
		zap.Bool("financial_context", !financialContext.IsEmpty()),
		zap.Int("response_length", len(text)),
	)

	return &dto.ChatResponse{Response: text}, nil
}
