package models

import (
	"bytes"
	"encoding/json"

	"finanzas-ai/internal/llm"
)

type Mode string

const (
	ModeChat         Mode = "chat"
	ModeReceiptParse Mode = "receipt-parse"
)

// ParseMode maps the request's mode field onto the two handling paths.
// Only "receipt-parse" selects receipt extraction; absent, empty and
// unrecognised values all select chat.
func ParseMode(s string) Mode {
	if s == string(ModeReceiptParse) {
		return ModeReceiptParse
	}
	return ModeChat
}

// AIChatRequest is the single request body accepted by the ai-chat
// function. Which fields matter depends on the mode.
type AIChatRequest struct {
	Mode                string            `json:"mode"`
	Message             string            `json:"message"`
	FinancialContext    *FinancialContext `json:"financial_context"`
	ConversationHistory History           `json:"conversation_history"`
	OCRText             string            `json:"ocr_text"`
}

// FinancialContext is the optional summary the app attaches to chat
// messages.
type FinancialContext struct {
	Period  string           `json:"period"`
	Summary *FinancialSummary `json:"summary"`

	// fields counts the keys present in the JSON object.
	fields int
}

type FinancialSummary struct {
	TotalIncome   *float64 `json:"totalIncome"`
	TotalExpenses *float64 `json:"totalExpenses"`
	Balance       *float64 `json:"balance"`
	NetWorth      *float64 `json:"netWorth"`
}

func (f *FinancialContext) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	type plain FinancialContext
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*f = FinancialContext(decoded)
	f.fields = len(keys)
	return nil
}

// IsEmpty reports whether the context carries no keys at all, in which
// case no context block is added to the prompt.
func (f *FinancialContext) IsEmpty() bool {
	return f == nil || f.fields == 0
}

// HistoryMessage is one prior conversation turn. The role is coerced to
// user or assistant while decoding.
type HistoryMessage struct {
	Role    llm.Role `json:"role"`
	Content string   `json:"content"`
}

func (m *HistoryMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Role = llm.ParseRole(raw.Role)
	m.Content = raw.Content
	return nil
}

// History holds prior turns in input order. Anything other than a JSON
// array decodes to an empty history.
type History []HistoryMessage

func (h *History) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		*h = nil
		return nil
	}
	var items []HistoryMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}
	*h = items
	return nil
}
