package parser

import "strings"

// normalize uppercases the transcript and derives the ordered line sequence.
// Lines are trimmed and blank lines dropped; order is preserved because earlier
// lines weigh more heavily in brand guessing and adjacency defines context.
func normalize(rawText string, lines []string) (string, []string) {
	text := strings.ToUpper(strings.TrimSpace(rawText))
	if text == "" {
		return "", nil
	}

	source := lines
	if len(source) == 0 {
		source = strings.Split(rawText, "\n")
	}

	normalized := make([]string, 0, len(source))
	for _, line := range source {
		line = strings.TrimSpace(strings.ToUpper(line))
		if line != "" {
			normalized = append(normalized, line)
		}
	}
	return text, normalized
}

// contextWindow joins a line with its immediate neighbors. Keyword checks run
// against the window so a label on the line above still counts.
func contextWindow(lines []string, i int) string {
	window := lines[i]
	if i > 0 {
		window = lines[i-1] + " " + window
	}
	if i < len(lines)-1 {
		window = window + " " + lines[i+1]
	}
	return window
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
