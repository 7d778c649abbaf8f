package dto

// PageText is one page of raw OCR output, the input to bill parsing.
type PageText struct {
	PageNo int    `json:"page_no"`
	Text   string `json:"text"`
}

// Item categories assigned by keyword lookup. Cosmetic, not authoritative.
const (
	CategoryMedical = "medical"
	CategoryService = "service"
	CategoryProduct = "product"
	CategoryTax     = "tax"
	CategoryOther   = "other"
)

// Page types detected from keyword presence.
const (
	PageTypePharmacy   = "Pharmacy"
	PageTypeFinalBill  = "Final Bill"
	PageTypeBillDetail = "Bill Detail"
)

// BillItem is one extracted line item. ItemAmount is the authoritative total
// for the line; on noisy OCR input quantity*rate is not guaranteed to equal it.
type BillItem struct {
	ItemName     string  `json:"item_name"`
	ItemAmount   float64 `json:"item_amount"`
	ItemRate     float64 `json:"item_rate"`
	ItemQuantity float64 `json:"item_quantity"`
	Category     string  `json:"category,omitempty"`
}

// PageLineItems groups the items found on a single page.
type PageLineItems struct {
	PageNo    string     `json:"page_no"`
	PageType  string     `json:"page_type"`
	BillItems []BillItem `json:"bill_items"`
}

// BillValidation compares the sum of extracted item amounts against the best
// total amount mentioned in the document text.
type BillValidation struct {
	ExtractedTotal float64  `json:"extracted_total"`
	ValidatedTotal *float64 `json:"validated_total,omitempty"`
	AccuracyScore  *float64 `json:"accuracy_score,omitempty"`
	Confidence     string   `json:"confidence"`
	Note           string   `json:"note,omitempty"`
}

// BillData is the assembled extraction result for one document.
type BillData struct {
	PagewiseLineItems []PageLineItems `json:"pagewise_line_items"`
	TotalItemCount    int             `json:"total_item_count"`
	Validation        *BillValidation `json:"llm_validation,omitempty"`
}

// TokenUsage reports estimated token consumption for the enhancement pass.
type TokenUsage struct {
	TotalTokens  int `json:"total_tokens"`
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// PaymentQR carries the payload of a payment QR code found on the bill image.
type PaymentQR struct {
	Payload string `json:"payload"`
}
