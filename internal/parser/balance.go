package parser

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Balance patterns, tried in order: labeled amount, dollar amount with a
// trailing qualifier, bare amount with a currency word.
var balancePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:BALANCE|VALUE|AMOUNT|WORTH)[:\s]*\$?\s*(\d+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`\$\s*(\d+(?:\.\d{1,2})?)\s*(?:BALANCE|VALUE|REMAINING|USD|DOLLARS?)`),
	regexp.MustCompile(`(\d+\.\d{2})\s*(?:USD|DOLLARS?)`),
}

// extractBalance finds the first plausible monetary value and formats it with
// two fraction digits. Amounts outside the configured window are skipped:
// they are more likely prices, totals, or stray numbers than card balances.
func (p *Parser) extractBalance(text string) string {
	for _, re := range balancePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			amount, err := decimal.NewFromString(m[1])
			if err != nil {
				continue
			}
			if amount.LessThan(p.minBalance) || amount.GreaterThan(p.maxBalance) {
				continue
			}
			return amount.StringFixed(2)
		}
	}
	return ""
}
