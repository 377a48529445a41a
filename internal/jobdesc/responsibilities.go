package jobdesc

import (
	"regexp"
	"strings"
)

const (
	maxResponsibilities = 10
	minBulletLength     = 10
	minSentenceLength   = 15
)

var responsibilityKeywords = []string{
	"responsibilities", "duties", "what you'll do", "job description", "the role",
}

// sectionHeaders are the headings that terminate a responsibilities section
// when no blank line does so earlier.
var sectionHeaders = []string{
	"requirements", "qualifications", "skills", "what you'll need",
	"what we're looking for", "education", "benefits",
}

// bulletDelimiters are tried in fixed priority order; the first delimiter
// that splits the section at all wins.
var bulletDelimiters = []*regexp.Regexp{
	regexp.MustCompile(`•\s*`),
	regexp.MustCompile(`-\s*`),
	regexp.MustCompile(`\*\s*`),
	regexp.MustCompile(`\d+\.\s*`),
	regexp.MustCompile(`[a-z)]\)\s*`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// extractResponsibilities locates the responsibilities section and splits it
// into items by the highest-priority bullet pattern that applies, falling
// back to sentence splitting when no bullet delimiter is present.
func extractResponsibilities(text string) []string {
	lower := strings.ToLower(text)
	section := responsibilitiesSection(lower)
	if section == "" {
		return []string{}
	}

	items := make([]string, 0)
	for _, delimiter := range bulletDelimiters {
		parts := delimiter.Split(section, -1)
		if len(parts) < 2 {
			continue
		}
		for _, part := range parts[1:] {
			item := whitespaceRun.ReplaceAllString(strings.TrimSpace(part), " ")
			if len(item) > minBulletLength {
				items = append(items, item)
			}
		}
		break
	}

	if len(items) == 0 {
		for _, sentence := range splitSentences(section) {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) > minSentenceLength {
				items = append(items, sentence)
			}
		}
	}

	if len(items) > maxResponsibilities {
		items = items[:maxResponsibilities]
	}
	return items
}

// responsibilitiesSection bounds the section at the next blank line or the
// nearest known section header after the keyword, whichever comes first.
func responsibilitiesSection(lower string) string {
	for _, keyword := range responsibilityKeywords {
		start := strings.Index(lower, keyword)
		if start < 0 {
			continue
		}

		end := len(lower)
		if idx := strings.Index(lower[start:], "\n\n"); idx >= 0 {
			end = start + idx
		}
		searchFrom := start + len(keyword)
		for _, header := range sectionHeaders {
			if idx := strings.Index(lower[searchFrom:], header); idx >= 0 && searchFrom+idx < end {
				end = searchFrom + idx
			}
		}
		return lower[start:end]
	}
	return ""
}

var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// splitSentences splits text after sentence-ending punctuation, keeping the
// punctuation with the preceding sentence.
func splitSentences(text string) []string {
	sentences := make([]string, 0)
	last := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation mark; keep it with the sentence.
		sentences = append(sentences, text[last:loc[0]+1])
		last = loc[1]
	}
	if last < len(text) {
		sentences = append(sentences, text[last:])
	}
	return sentences
}
