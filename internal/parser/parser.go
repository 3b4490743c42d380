// Package parser turns raw, noisy gift card OCR text into structured fields.
//
// The engine is a pure-function pipeline: the transcript is normalized once,
// then each extractor (card number, balance, expiration date, PIN, brand) runs
// independently against the shared normalized text. Extractors never fail hard;
// a field that cannot be confidently extracted is simply left empty, because
// manual correction by the end user is always the fallback.
package parser

import (
	"time"

	"github.com/cardstash/giftcard-ocr-engine/internal/models"
	"github.com/shopspring/decimal"
)

// Default product constants. The windows exist to avoid false positives from
// unrelated numbers (phone fragments, item prices, street addresses) and will
// need periodic revision.
const (
	defaultMinYear = 2024
	defaultMaxYear = 2040
)

var (
	defaultMinBalance = decimal.NewFromInt(5)
	defaultMaxBalance = decimal.NewFromInt(2000)
)

// Parser extracts structured gift card fields from OCR transcripts.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	brands     []models.BrandEntry
	minYear    int
	maxYear    int
	minBalance decimal.Decimal
	maxBalance decimal.Decimal

	// now is the clock used by the unanchored date fallback, which only
	// accepts dates in the future. Overridable in tests.
	now func() time.Time
}

// NewParser creates a parser with the built-in brand dictionary and default
// year/balance windows.
func NewParser() *Parser {
	return NewParserFromConfig(nil)
}

// NewParserFromConfig creates a parser, overriding defaults with any non-zero
// config fields. Config brand entries are checked before the built-in table.
func NewParserFromConfig(cfg *models.Config) *Parser {
	p := &Parser{
		brands:     defaultBrands,
		minYear:    defaultMinYear,
		maxYear:    defaultMaxYear,
		minBalance: defaultMinBalance,
		maxBalance: defaultMaxBalance,
		now:        time.Now,
	}
	if cfg == nil {
		return p
	}
	if cfg.MinYear != 0 {
		p.minYear = cfg.MinYear
	}
	if cfg.MaxYear != 0 {
		p.maxYear = cfg.MaxYear
	}
	if cfg.MinBalance != 0 {
		p.minBalance = decimal.NewFromFloat(cfg.MinBalance)
	}
	if cfg.MaxBalance != 0 {
		p.maxBalance = decimal.NewFromFloat(cfg.MaxBalance)
	}
	if len(cfg.Brands) > 0 {
		merged := make([]models.BrandEntry, 0, len(cfg.Brands)+len(defaultBrands))
		merged = append(merged, cfg.Brands...)
		merged = append(merged, defaultBrands...)
		p.brands = merged
	}
	return p
}

// Parse extracts every supported field from the transcript and assembles the
// result with an advisory confidence score.
//
// rawText is the full recognized text. lines may carry block-level line
// boundaries from the upstream recognizer; when nil, lines are derived by
// splitting rawText on line breaks. Empty input short-circuits to an empty,
// zero-confidence result.
func (p *Parser) Parse(rawText string, lines []string) models.ParsedResult {
	text, normLines := normalize(rawText, lines)
	if text == "" {
		return models.ParsedResult{}
	}

	return models.ParsedResult{
		CardNumber:     p.extractCardNumber(text, normLines),
		Balance:        p.extractBalance(text),
		ExpirationDate: p.extractExpirationDate(text, normLines),
		Brand:          p.matchBrand(text, normLines),
		PIN:            extractPIN(text),
		Confidence:     scoreConfidence(text, normLines),
	}
}
