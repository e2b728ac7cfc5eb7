// Package llm wraps the text-generation providers behind a single
// request/response call.
package llm

import (
	"context"
	"time"
)

// Role is the author of a conversation turn. Only two roles exist; system
// instructions travel in Request.System.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ParseRole maps a free-form role onto the closed set. Anything that is
// not exactly "user" is treated as an assistant turn.
func ParseRole(s string) Role {
	if s == string(RoleUser) {
		return RoleUser
	}
	return RoleAssistant
}

const BlockTypeText = "text"

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Model     string
	System    string
	MaxTokens int
	Messages  []Message
}

// ContentBlock is one typed unit of a provider reply.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type Response struct {
	Model   string
	Content []ContentBlock
}

// FirstText returns the text of the first text-typed block. ok is false
// when the reply carries no text block at all.
func (r *Response) FirstText() (text string, ok bool) {
	if r == nil {
		return "", false
	}
	for _, block := range r.Content {
		if block.Type == BlockTypeText {
			return block.Text, true
		}
	}
	return "", false
}

// BlockTypes lists the block types in reply order, for diagnostics.
func (r *Response) BlockTypes() []string {
	if r == nil {
		return nil
	}
	types := make([]string, 0, len(r.Content))
	for _, block := range r.Content {
		types = append(types, block.Type)
	}
	return types
}

// Generator performs exactly one provider round trip per call.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (*Response, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// WithTimeout bounds every call of next by d. A non-positive d returns
// next unchanged.
func WithTimeout(next Generator, d time.Duration) Generator {
	if d <= 0 {
		return next
	}
	return GeneratorFunc(func(ctx context.Context, req Request) (*Response, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next.Generate(ctx, req)
	})
}
