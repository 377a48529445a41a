// Package jobdesc extracts structured requirements from raw job description
// text. Extraction is deterministic keyword- and pattern-based; every function
// degrades to empty results rather than failing on malformed input.
package jobdesc

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
	"github.com/jonathan/resume-rater/internal/vocab"
)

// firstParagraphCap bounds the "first paragraph" window when the text has no
// blank line at all.
const firstParagraphCap = 500

// Extractor parses job descriptions against a shared skill vocabulary.
type Extractor struct {
	vocab *vocab.Vocabulary
}

// New returns an Extractor backed by the given vocabulary. Passing nil uses
// the process-wide default vocabulary.
func New(v *vocab.Vocabulary) *Extractor {
	if v == nil {
		v = vocab.Default()
	}
	return &Extractor{vocab: v}
}

// Extract parses a full job description into a JobRequirements record.
// Empty input yields an empty record, never an error.
func (e *Extractor) Extract(text string) *types.JobRequirements {
	req := &types.JobRequirements{
		RawText:          text,
		Skills:           []string{},
		PrioritySkills:   []string{},
		Responsibilities: []string{},
	}
	if strings.TrimSpace(text) == "" {
		return req
	}

	req.Skills = e.extractSkills(text)
	req.PrioritySkills = e.extractPrioritySkills(text, req.Skills)
	req.Experience = extractExperience(text)
	req.Education = extractEducation(text)
	req.Responsibilities = extractResponsibilities(text)
	req.Title = extractTitle(text)
	req.Location = extractLocation(text)
	return req
}

// extractSkills matches vocabulary terms as whole words, case-insensitively.
func (e *Extractor) extractSkills(text string) []string {
	return e.vocab.ExtractSkills(text)
}

var emphasisIntro = []string{
	`(strong|excellent|advanced|expert)\s+`,
	`experience\s+(?:with|in)\s+`,
	`proficient\s+(?:with|in)\s+`,
}

var requirementsHeadings = []string{
	"requirements", "qualifications", "skills required", "what you'll need",
}

// extractPrioritySkills classifies each extracted skill as priority or not.
// The checks run in a fixed order per skill and the first hit wins:
// repeated mention, first paragraph, requirements section, upper-cased
// occurrence, emphasis markers, then intensifier phrasing.
func (e *Extractor) extractPrioritySkills(text string, skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}
	lower := strings.ToLower(text)
	firstPara := firstParagraph(lower)
	reqSection := requirementsSection(lower)

	priority := make([]string, 0)
	seen := make(map[string]bool)
	add := func(skill string) {
		if !seen[skill] {
			seen[skill] = true
			priority = append(priority, skill)
		}
	}

	for _, skill := range skills {
		switch {
		case e.vocab.CountOccurrences(skill, lower) > 1:
			add(skill)
		case e.vocab.Match(skill, firstPara):
			add(skill)
		case reqSection != "" && e.vocab.Match(skill, reqSection):
			add(skill)
		case upperCaseMention(skill, text):
			add(skill)
		case emphasisWrapped(skill, lower):
			add(skill)
		case intensified(skill, lower):
			add(skill)
		}
	}
	return priority
}

// firstParagraph returns the text up to the first blank line, or the first
// 500 characters when the text has no blank line.
func firstParagraph(lower string) string {
	if idx := strings.Index(lower, "\n\n"); idx >= 0 {
		return lower[:idx]
	}
	if len(lower) > firstParagraphCap {
		return lower[:firstParagraphCap]
	}
	return lower
}

// requirementsSection returns the text from the first requirements-style
// heading to the next blank line, or "" when no heading is present.
func requirementsSection(lower string) string {
	for _, heading := range requirementsHeadings {
		start := strings.Index(lower, heading)
		if start < 0 {
			continue
		}
		end := strings.Index(lower[start:], "\n\n")
		if end < 0 {
			return lower[start:]
		}
		return lower[start : start+end]
	}
	return ""
}

// upperCaseMention reports whether the skill appears fully upper-cased in the
// original (non-lowered) text.
func upperCaseMention(skill, original string) bool {
	upper := strings.ToUpper(skill)
	if upper == skill {
		// Terms without letters cannot be emphasized by casing.
		return false
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(upper) + `\b`)
	return re.MatchString(original)
}

// emphasisWrapped reports whether the skill is wrapped in * or _ markers.
func emphasisWrapped(skill, lower string) bool {
	re := regexp.MustCompile(`[*_]` + regexp.QuoteMeta(skill) + `[*_]`)
	return re.MatchString(lower)
}

// intensified reports whether the skill is preceded by an intensifier word or
// an "experience with/in" / "proficient with/in" phrase.
func intensified(skill, lower string) bool {
	for _, intro := range emphasisIntro {
		re := regexp.MustCompile(intro + regexp.QuoteMeta(skill))
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}
