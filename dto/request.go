package dto

import "errors"

// BillExtractionRequest is the incoming request body for /extract-bill-data.
// Document is an HTTP(S) URL or a base64 data URL of the bill image or PDF.
type BillExtractionRequest struct {
	Document string `json:"document" binding:"required"`
}

// Validate performs basic validation on the request
func (r *BillExtractionRequest) Validate() error {
	if r.Document == "" {
		return ErrMissingDocument
	}
	return nil
}

// TextExtractionRequest is the incoming request body for /test-text.
// The text is parsed as a single-page bill, bypassing download and OCR.
type TextExtractionRequest struct {
	Text string `json:"text" binding:"required"`
}

// Validate performs basic validation on the request
func (r *TextExtractionRequest) Validate() error {
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}
