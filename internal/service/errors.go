package service

const (
	MsgMessageRequired = "Message is required"
	MsgOCRTextRequired = "OCR text is required"
	MsgParseFailed     = "Could not parse AI response"
)

// ValidationError reports a missing or unusable request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseError reports a provider reply that is not the JSON object the
// prompt asked for. Raw is the reply text exactly as received.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return MsgParseFailed
	}
	return MsgParseFailed + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
