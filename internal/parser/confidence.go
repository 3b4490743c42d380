package parser

import "regexp"

// Confidence score weights. The score is a simple additive heuristic, not a
// calibrated probability; it is reported alongside the result so callers can
// decide whether to prompt for manual review. It never gates a field.
const (
	giftKeywordWeight = 20
	cardRunWeight     = 30
	dollarWeight      = 20
	dateWeight        = 15
	firstLineWeight   = 15
)

var giftCardKeywords = []string{"GIFT", "CARD", "VALUE", "BALANCE", "REDEEM"}

var (
	dollarAmountRegex = regexp.MustCompile(`\$\s*\d+(?:\.\d{2})?`)
	dateTokenRegex    = regexp.MustCompile(`\d{1,2}/\d{2,4}`)
)

// scoreConfidence estimates how much structured information the transcript
// carries, clamped to 0-100.
func scoreConfidence(text string, lines []string) int {
	score := 0
	if containsAny(text, giftCardKeywords) {
		score += giftKeywordWeight
	}
	if hasCardLengthRun(text) {
		score += cardRunWeight
	}
	if dollarAmountRegex.MatchString(text) {
		score += dollarWeight
	}
	if dateTokenRegex.MatchString(text) {
		score += dateWeight
	}
	if len(lines) > 0 && len(lines[0]) > 2 {
		score += firstLineWeight
	}
	if score > 100 {
		score = 100
	}
	return score
}

func hasCardLengthRun(text string) bool {
	for _, m := range cardCandidateRegex.FindAllString(text, -1) {
		if n := len(digitsOnly(m)); n >= 13 && n <= 19 {
			return true
		}
	}
	return false
}
