package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const gigachatProvider = "gigachat"

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

// gigaCompleteFunc runs one completion and returns the first choice's
// content; ok is false when the reply had no choices.
type gigaCompleteFunc func(ctx context.Context, model, system string, messages []gigago.Message) (content string, ok bool, err error)

// GigaChatClient serves requests through the GigaChat API. The token
// ceiling is not forwarded; GigaChat applies its model default.
type GigaChatClient struct {
	client   *gigago.Client
	complete gigaCompleteFunc
	logger   *zap.Logger
}

func NewGigaChatClient(ctx context.Context, cfg GigaChatConfig, logger *zap.Logger) (*GigaChatClient, error) {
	if cfg.APIKey == "" {
		return nil, &ProviderError{
			Provider: gigachatProvider,
			Op:       "validate_configuration",
			Err:      errors.New("API key is not configured, set GIGACHAT_API_KEY"),
		}
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, &ProviderError{Provider: gigachatProvider, Op: "create_client", Err: err}
	}

	g := &GigaChatClient{client: client, logger: logger}
	g.complete = func(ctx context.Context, model, system string, messages []gigago.Message) (string, bool, error) {
		// SystemInstruction lives on the model handle; one per call.
		m := client.GenerativeModel(model)
		m.SystemInstruction = system

		resp, err := m.Generate(ctx, messages)
		if err != nil {
			return "", false, err
		}
		if len(resp.Choices) == 0 {
			return "", false, nil
		}
		return resp.Choices[0].Message.Content, true, nil
	}
	return g, nil
}

func (g *GigaChatClient) Generate(ctx context.Context, req Request) (*Response, error) {
	content, ok, err := g.complete(ctx, req.Model, req.System, toGigaMessages(req.Messages))
	if err != nil {
		return nil, &ProviderError{Provider: gigachatProvider, Op: "generate", Err: fmt.Errorf("failed to generate response: %w", err)}
	}
	if !ok {
		g.logger.Warn("GigaChat returned no choices", zap.String("model", req.Model))
		return &Response{Model: req.Model}, nil
	}

	return &Response{
		Model:   req.Model,
		Content: []ContentBlock{{Type: BlockTypeText, Text: strings.TrimSpace(content)}},
	}, nil
}

func (g *GigaChatClient) Close() error {
	if g.client != nil {
		g.client.Close()
	}
	return nil
}

func toGigaMessages(messages []Message) []gigago.Message {
	out := make([]gigago.Message, 0, len(messages))
	for _, msg := range messages {
		role := gigago.RoleAssistant
		if msg.Role == RoleUser {
			role = gigago.RoleUser
		}
		out = append(out, gigago.Message{Role: role, Content: msg.Content})
	}
	return out
}
