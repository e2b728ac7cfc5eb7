package dto

import "finanzas-ai/internal/models"

type ChatResponse struct {
	Response string `json:"response"`
}

type ReceiptParseResponse struct {
	Success    bool             `json:"success"`
	Amount     *float64         `json:"amount"`
	Merchant   *string          `json:"merchant"`
	Date       *string          `json:"date"`
	Category   *models.Category `json:"category"`
	Confidence float64          `json:"confidence"`
}

func NewReceiptParseResponse(r *models.ReceiptExtraction) ReceiptParseResponse {
	return ReceiptParseResponse{
		Success:    true,
		Amount:     r.Amount,
		Merchant:   r.Merchant,
		Date:       r.Date,
		Category:   r.Category,
		Confidence: r.Confidence,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ReceiptErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ReceiptParseErrorResponse carries the provider text that could not be
// parsed, verbatim.
type ReceiptParseErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Raw     string `json:"raw"`
}
