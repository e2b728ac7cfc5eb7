package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	anthropicProvider       = "anthropic"
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	defaultAnthropicVersion = "2023-06-01"
)

// AnthropicConfig holds configuration for the Messages API client
type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Version string
	// Timeout of zero disables the client-side timeout.
	Timeout time.Duration
}

// AnthropicClient calls the Claude Messages API. It is safe for
// concurrent use and holds no per-request state.
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	version    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewAnthropicClient(cfg AnthropicConfig, logger *zap.Logger) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, &ProviderError{
			Provider: anthropicProvider,
			Op:       "validate_configuration",
			Err:      errors.New("API key is not configured, set ANTHROPIC_API_KEY"),
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAnthropicBaseURL
	}
	if cfg.Version == "" {
		cfg.Version = defaultAnthropicVersion
	}

	return &AnthropicClient{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		version:    cfg.Version,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}, nil
}

type anthropicRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

type anthropicResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type anthropicErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one non-streaming Messages request.
func (c *AnthropicClient) Generate(ctx context.Context, req Request) (*Response, error) {
	payload, err := json.Marshal(anthropicRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  req.Messages,
	})
	if err != nil {
		return nil, &ProviderError{Provider: anthropicProvider, Op: "marshal_request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, &ProviderError{Provider: anthropicProvider, Op: "create_request", Err: err}
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", c.version)
	httpReq.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ProviderError{Provider: anthropicProvider, Op: "send_request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: anthropicProvider, Op: "read_response", StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Provider:   anthropicProvider,
			Op:         "check_api_response",
			StatusCode: resp.StatusCode,
			Err:        errors.New(anthropicErrorMessage(body)),
		}
	}

	var decoded anthropicResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &ProviderError{Provider: anthropicProvider, Op: "decode_response", StatusCode: resp.StatusCode, Err: err}
	}

	c.logger.Debug("Anthropic message completed",
		zap.String("id", decoded.ID),
		zap.String("model", decoded.Model),
		zap.String("stop_reason", decoded.StopReason),
		zap.Int("input_tokens", decoded.Usage.InputTokens),
		zap.Int("output_tokens", decoded.Usage.OutputTokens),
	)

	return &Response{Model: decoded.Model, Content: decoded.Content}, nil
}

// anthropicErrorMessage extracts error.message from an API error body,
// falling back to the body itself.
func anthropicErrorMessage(body []byte) string {
	var apiErr anthropicErrorBody
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Sprintf("%s: %s", apiErr.Error.Type, apiErr.Error.Message)
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 500 {
		text = text[:500] + "... (truncated)"
	}
	return text
}
