package jobdesc

import (
	"regexp"
	"strings"
)

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)job title:?\s*(.*)`),
	regexp.MustCompile(`(?i)position:?\s*(.*)`),
	regexp.MustCompile(`(?i)role:?\s*(.*)`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)location:?\s*(.*)`),
	regexp.MustCompile(`(?i)based in:?\s*(.*)`),
	regexp.MustCompile(`(?i)position located in:?\s*(.*)`),
}

// extractTitle scans the first few sentences for an explicit job title label.
func extractTitle(text string) string {
	return scanLabelled(text, titlePatterns, 3)
}

// extractLocation scans the first few sentences for an explicit location label.
func extractLocation(text string) string {
	return scanLabelled(text, locationPatterns, 5)
}

func scanLabelled(text string, patterns []*regexp.Regexp, sentenceLimit int) string {
	sentences := splitSentences(text)
	if len(sentences) > sentenceLimit {
		sentences = sentences[:sentenceLimit]
	}
	for _, pattern := range patterns {
		for _, sentence := range sentences {
			match := pattern.FindStringSubmatch(sentence)
			if match == nil {
				continue
			}
			value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(match[1]), "."))
			if value != "" {
				// Labels are usually on their own line; keep just that line.
				if idx := strings.IndexByte(value, '\n'); idx >= 0 {
					value = strings.TrimSpace(value[:idx])
				}
				return value
			}
		}
	}
	return ""
}
