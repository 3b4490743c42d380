package parser

import (
	"regexp"
	"strconv"
	"time"
)

// Keywords that anchor an expiration date. Longer forms come before their
// prefixes in the regex alternation below.
var expirationKeywords = []string{
	"EXP", "EXPIRES", "EXPIRATION", "EXPIRY",
	"VALID", "GOOD", "THRU", "THROUGH", "UNTIL", "TILL", "USE BY",
}

const expirationKeywordAlt = `EXPIRES|EXPIRATION|EXPIRY|EXP|VALID|GOOD|THROUGH|THRU|UNTIL|TILL|USE BY`

const monthNameAlt = `JANUARY|FEBRUARY|MARCH|APRIL|MAY|JUNE|JULY|AUGUST|SEPTEMBER|OCTOBER|NOVEMBER|DECEMBER|` +
	`JAN|FEB|MAR|APR|JUN|JUL|AUG|SEPT|SEP|OCT|NOV|DEC`

var monthsByName = map[string]int{
	"JANUARY": 1, "FEBRUARY": 2, "MARCH": 3, "APRIL": 4, "MAY": 5, "JUNE": 6,
	"JULY": 7, "AUGUST": 8, "SEPTEMBER": 9, "OCTOBER": 10, "NOVEMBER": 11, "DECEMBER": 12,
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEPT": 9, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// Keyword-anchored sub-patterns, attempted in order against the context
// window of any line that carries an expiration keyword.
var (
	keywordDateRegex   = regexp.MustCompile(`(?:` + expirationKeywordAlt + `)[:\s]*(\d{1,2})[/-](\d{2,4})`)
	validThruDateRegex = regexp.MustCompile(`(?:VALID|GOOD)\s+(?:THROUGH|THRU|UNTIL)[:\s]*(\d{1,2})[/-](\d{2,4})`)
	bareDateRegex      = regexp.MustCompile(`(\d{1,2})[/-](\d{2,4})`)
	monthNameDateRegex = regexp.MustCompile(`(?:` + expirationKeywordAlt + `)[:\s]*(?:THROUGH|THRU|UNTIL|TILL|BY)?[,:\s]*(` + monthNameAlt + `)[,.\s]*(\d{4})`)
)

// looseDateRegex drives the unanchored fallback pass over the whole text.
var looseDateRegex = regexp.MustCompile(`\b(\d{1,2})[/-](\d{4}|\d{2})\b`)

// extractExpirationDate finds an expiration date and normalizes it to the last
// day of the indicated month in YYYY-MM-DD form.
func (p *Parser) extractExpirationDate(text string, lines []string) string {
	if date := p.keywordDatePass(lines); date != "" {
		return date
	}
	return p.fallbackDatePass(text)
}

// keywordDatePass scans lines whose context window carries an expiration
// keyword and tries each sub-pattern in order. A sub-pattern succeeds only
// when its date also survives normalization.
func (p *Parser) keywordDatePass(lines []string) string {
	for i := range lines {
		window := contextWindow(lines, i)
		if !containsAny(window, expirationKeywords) {
			continue
		}

		if m := keywordDateRegex.FindStringSubmatch(window); m != nil {
			if date := p.normalizeDate(atoi(m[1]), atoi(m[2])); date != "" {
				return date
			}
		}
		if m := validThruDateRegex.FindStringSubmatch(window); m != nil {
			if date := p.normalizeDate(atoi(m[1]), atoi(m[2])); date != "" {
				return date
			}
		}
		if m := bareDateRegex.FindStringSubmatch(window); m != nil {
			if date := p.normalizeDate(atoi(m[1]), atoi(m[2])); date != "" {
				return date
			}
		}
		if m := monthNameDateRegex.FindStringSubmatch(window); m != nil {
			if date := p.normalizeDate(monthsByName[m[1]], atoi(m[2])); date != "" {
				return date
			}
		}
	}
	return ""
}

// fallbackDatePass scans the whole text for MM/YY or MM/YYYY tokens with a
// plausible year and accepts the first that normalizes to a date strictly
// after today. Without a keyword anchor, a past date is far more likely a
// purchase or print date than an expiration.
func (p *Parser) fallbackDatePass(text string) string {
	today := p.now()
	for _, m := range looseDateRegex.FindAllStringSubmatch(text, -1) {
		month, year := atoi(m[1]), atoi(m[2])
		if len(m[2]) == 2 {
			if year < 25 || year > 49 {
				continue
			}
		} else if year < 2025 || year > 2049 {
			continue
		}
		date := p.normalizeDate(month, year)
		if date == "" {
			continue
		}
		if t, err := time.Parse("2006-01-02", date); err == nil && t.After(today) {
			return date
		}
	}
	return ""
}

// normalizeDate maps 2-digit years below 50 to 20YY (otherwise 19YY), rejects
// months outside 1-12 and years outside the configured window, and emits the
// last calendar day of the month. Day 0 of the following month is the last
// day of this one, leap years included.
func (p *Parser) normalizeDate(month, year int) string {
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 {
		return ""
	}
	if year < p.minYear || year > p.maxYear {
		return ""
	}
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return lastDay.Format("2006-01-02")
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
