// Package ingestion turns candidate and job documents into clean plain text
// ready for extraction. It handles .txt, .pdf and .docx inputs and applies
// the same whitespace normalization to all of them so that downstream
// line-oriented heuristics see a consistent shape.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace  = regexp.MustCompile(`[ \t]+`)
	multiBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted document text while preserving its line
// structure. Line endings become LF, trailing whitespace is stripped, runs of
// spaces inside a line collapse to one, and runs of blank lines collapse to a
// single blank line. Bullet markers and leading indentation survive cleaning
// so section and list detection still work on the result.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	if marker, rest, ok := splitBullet(trimmed); ok {
		rest = multiSpace.ReplaceAllString(rest, " ")
		return strings.Repeat(" ", indent) + marker + " " + rest
	}

	content := multiSpace.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// splitBullet recognizes common list markers at the start of a line.
func splitBullet(line string) (marker, rest string, ok bool) {
	for _, m := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(m), strings.TrimSpace(line[len(m):]), true
		}
	}
	return "", "", false
}
