package parser

import (
	"regexp"
	"strings"
)

// Positive context indicators: a nearby label suggesting an account number.
var cardPositiveKeywords = []string{
	"CARD", "NUMBER", "ACCOUNT", "#", "NUM", "NO", "NBR",
	"GIFT", "REDEMPTION", "CODE", "ID",
}

// Negative context indicators: digit runs near these are phone numbers, URLs,
// receipt metadata, or dates, not account numbers.
var cardNegativeKeywords = []string{
	"CUSTOMER", "SERVICE", "PHONE", "CALL", "VISIT", "WWW", "HTTP",
	"TERMS", "CONDITIONS", "HELP", "SUPPORT", "BALANCE", "PRICE", "COST",
	"PURCHASE", "INVOICE", "RECEIPT", "ORDER", "DATE", "TIME",
	"YEAR", "MONTH", "DAY", "EXPIRES", "VALID",
}

var digitRunRegex = regexp.MustCompile(`\d+`)

// Run lengths tried against a labeled line, most likely lengths first.
var cardRunLengths = [][2]int{{19, 19}, {16, 16}, {15, 15}, {13, 14}}

// cardCandidateRegex matches digit runs that may be broken into groups by
// single spaces, dashes, or dots, the way card numbers are printed:
// 4111111111111111, 4111 1111 1111 1111, 4111-1111-1111-1111.
var cardCandidateRegex = regexp.MustCompile(`\d(?:[ \-.]?\d){12,18}`)

const contextRadius = 50

// extractCardNumber finds the single most likely gift card number. Three
// passes run in order and the first success wins: a labeled-line pass, a
// contextual whole-text pass, and a sole-16-digit-candidate fallback.
func (p *Parser) extractCardNumber(text string, lines []string) string {
	if number := labeledCardPass(lines); number != "" {
		return FormatCardNumber(number)
	}
	if number := contextualCardPass(text); number != "" {
		return FormatCardNumber(number)
	}
	if number := soleCandidateCardPass(text); number != "" {
		return FormatCardNumber(number)
	}
	return ""
}

// labeledCardPass scans lines whose context window carries a positive label.
// Negative indicators are checked against the candidate's own line only: a
// "BALANCE: $45.00" line below a labeled card number must not veto it.
func labeledCardPass(lines []string) string {
	for i, line := range lines {
		if !containsAny(contextWindow(lines, i), cardPositiveKeywords) {
			continue
		}
		if containsAny(line, cardNegativeKeywords) {
			continue
		}
		runs := digitRunRegex.FindAllString(stripNonAlphanumeric(line), -1)
		for _, want := range cardRunLengths {
			for _, run := range runs {
				if len(run) >= want[0] && len(run) <= want[1] && isValidCardNumber(run) {
					return run
				}
			}
		}
	}
	return ""
}

// contextualCardPass inspects every 13-19 digit run in the whole text and
// accepts the first whose surrounding window carries a positive indicator and
// no negative one.
func contextualCardPass(text string) string {
	for _, loc := range cardCandidateRegex.FindAllStringIndex(text, -1) {
		digits := digitsOnly(text[loc[0]:loc[1]])
		if len(digits) < 13 || len(digits) > 19 {
			continue
		}
		window := surroundingWindow(text, loc[0], loc[1])
		if !containsAny(window, cardPositiveKeywords) {
			continue
		}
		if containsAny(window, cardNegativeKeywords) {
			continue
		}
		if isValidCardNumber(digits) {
			return digits
		}
	}
	return ""
}

// soleCandidateCardPass accepts an unlabeled number only when it is the one
// and only 16-digit run in the text and nothing nearby marks it as a phone
// number or receipt artifact.
func soleCandidateCardPass(text string) string {
	var candidate string
	count := 0
	for _, loc := range cardCandidateRegex.FindAllStringIndex(text, -1) {
		digits := digitsOnly(text[loc[0]:loc[1]])
		if len(digits) != 16 {
			continue
		}
		count++
		if count > 1 {
			return ""
		}
		if containsAny(surroundingWindow(text, loc[0], loc[1]), cardNegativeKeywords) {
			return ""
		}
		candidate = digits
	}
	if count == 1 && isValidCardNumber(candidate) {
		return candidate
	}
	return ""
}

func surroundingWindow(text string, start, end int) string {
	start -= contextRadius
	if start < 0 {
		start = 0
	}
	end += contextRadius
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

// isValidCardNumber rejects placeholder and sequential digit patterns. Exactly
// 16-digit candidates must additionally satisfy the Luhn checksum; gift cards
// of other lengths are not guaranteed to be Luhn numbers, so the pattern
// checks alone apply there.
func isValidCardNumber(number string) bool {
	if len(number) < 13 || len(number) > 19 {
		return false
	}
	if allSameDigit(number) || isAscendingRun(number) {
		return false
	}
	if len(number) == 16 && !luhnValid(number) {
		return false
	}
	return true
}

func allSameDigit(number string) bool {
	for i := 1; i < len(number); i++ {
		if number[i] != number[0] {
			return false
		}
	}
	return true
}

// isAscendingRun reports whether every digit is the previous one plus one,
// wrapping 9 to 0 (catches placeholders like 1234567890123456).
func isAscendingRun(number string) bool {
	for i := 1; i < len(number); i++ {
		prev := number[i-1] - '0'
		cur := number[i] - '0'
		if cur != (prev+1)%10 {
			return false
		}
	}
	return true
}

// luhnValid checks the Luhn checksum: double every second digit from the
// right, subtract 9 from doubles above 9, and require the sum to divide by 10.
func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := number[i] - '0'
		if d > 9 {
			return false
		}
		v := int(d)
		if double {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
		double = !double
	}
	return sum%10 == 0
}

// FormatCardNumber strips any existing separators and re-groups the number
// with a space every 4 characters. 15-character numbers use the 4-6-5
// American Express grouping.
func FormatCardNumber(number string) string {
	number = StripCardNumberFormatting(number)
	if len(number) == 15 {
		return number[:4] + " " + number[4:10] + " " + number[10:]
	}
	var groups []string
	for i := 0; i < len(number); i += 4 {
		end := i + 4
		if end > len(number) {
			end = len(number)
		}
		groups = append(groups, number[i:end])
	}
	return strings.Join(groups, " ")
}

// StripCardNumberFormatting removes every non-alphanumeric character and
// uppercases what remains.
func StripCardNumberFormatting(s string) string {
	return strings.ToUpper(stripNonAlphanumeric(s))
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
