package llm

import "fmt"

// ProviderError represents a failed round trip to a provider
type ProviderError struct {
	Provider   string // "anthropic", "gigachat"
	Op         string // Operation that failed
	StatusCode int    // HTTP status when the provider answered, 0 otherwise
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Provider + " error: " + e.Op
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
