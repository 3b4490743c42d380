package parser

import "regexp"

// PIN label patterns, tried in order. CVV codes are shorter than the rest.
var pinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`PIN[:\s#]*(\d{4,8})`),
	regexp.MustCompile(`ACCESS (?:CODE|NUMBER)[:\s#]*(\d{4,8})`),
	regexp.MustCompile(`SECURITY CODE[:\s#]*(\d{4,8})`),
	regexp.MustCompile(`CVV[:\s]*(\d{3,4})`),
}

// extractPIN finds a short numeric access code next to a recognized label.
func extractPIN(text string) string {
	for _, re := range pinPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}
