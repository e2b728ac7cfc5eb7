package llm

import (
	"context"
	"fmt"

	"finanzas-ai/pkg/config"

	"go.uber.org/zap"
)

// NewFromConfig builds the generator selected by AI_PROVIDER with the
// configured AI timeout applied.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Generator, error) {
	var gen Generator

	switch cfg.AI.Provider {
	case config.ProviderAnthropic:
		client, err := NewAnthropicClient(AnthropicConfig{
			APIKey:  cfg.Anthropic.APIKey,
			BaseURL: cfg.Anthropic.BaseURL,
			Version: cfg.Anthropic.Version,
			Timeout: cfg.AI.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		gen = client
	case config.ProviderGigaChat:
		client, err := NewGigaChatClient(ctx, GigaChatConfig{
			APIKey:             cfg.GigaChat.APIKey,
			Scope:              cfg.GigaChat.Scope,
			InsecureSkipVerify: cfg.GigaChat.InsecureSkipVerify,
		}, logger)
		if err != nil {
			return nil, err
		}
		gen = client
		if cfg.AI.Timeout > 0 {
			gen = closingGenerator{Generator: WithTimeout(client, cfg.AI.Timeout), closer: client}
		}
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AI.Provider)
	}

	logger.Info("AI provider initialized",
		zap.String("provider", cfg.AI.Provider),
		zap.String("chat_model", cfg.AI.ChatModel),
		zap.String("receipt_model", cfg.AI.ReceiptModel),
	)
	return gen, nil
}

// closingGenerator keeps the backend's Close reachable after decoration.
type closingGenerator struct {
	Generator
	closer interface{ Close() error }
}

func (c closingGenerator) Close() error {
	return c.closer.Close()
}
