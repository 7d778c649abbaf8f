package dto

import "errors"

// Custom errors
var (
	ErrMissingDocument = errors.New("missing 'document' URL in request body")
	ErrNoTextExtracted = errors.New("no text could be extracted from the document")
)

// BillExtractionResponse is the final response structure
type BillExtractionResponse struct {
	IsSuccess  bool       `json:"is_success"`
	TokenUsage TokenUsage `json:"token_usage"`
	Data       *BillData  `json:"data,omitempty"`
	PaymentQR  *PaymentQR `json:"payment_qr,omitempty"`
	Error      string     `json:"error,omitempty"`
}
