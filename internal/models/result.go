package models

// ParsedResult represents the structured fields extracted from a gift card OCR transcript.
// An empty string means the field was not found. Extracted values are best-effort
// suggestions: callers should present them as pre-filled, editable form fields and
// never treat them as verified data.
type ParsedResult struct {
	CardNumber     string `json:"cardNumber,omitempty"`     // grouped every 4 chars (4-6-5 for 15-char numbers)
	Balance        string `json:"balance,omitempty"`        // decimal string with two fraction digits
	ExpirationDate string `json:"expirationDate,omitempty"` // YYYY-MM-DD, always the last day of the month
	Brand          string `json:"brand,omitempty"`          // recognized merchant or title-cased best guess
	PIN            string `json:"pin,omitempty"`            // 3-8 digit access code
	Confidence     int    `json:"confidence"`               // advisory score 0-100
}
