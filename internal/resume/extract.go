// Package resume extracts a structured candidate profile from resume text.
// It shares the skill vocabulary with the job description extractor so both
// sides match against the same terms.
package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
	"github.com/jonathan/resume-rater/internal/vocab"
)

// Extractor parses candidate documents against a shared skill vocabulary.
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

// Extract parses resume text into a CandidateProfile. Empty input yields an
// empty profile, never an error.
func (e *Extractor) Extract(text string) *types.CandidateProfile {
	profile := &types.CandidateProfile{
		RawText:    text,
		Skills:     []string{},
		Education:  []types.EducationEntry{},
		Experience: []types.ExperienceEntry{},
	}
	if strings.TrimSpace(text) == "" {
		return profile
	}

	profile.Skills = e.vocab.ExtractSkills(text)
	profile.Education = extractEducation(text)
	profile.Experience = extractExperience(text)
	profile.Email = extractEmail(text)
	profile.Phone = extractPhone(text)
	profile.Name = extractName(text)
	return profile
}

// allCapsHeader matches lines that look like section headers in a resume
// ("EXPERIENCE", "EDUCATION:", ...).
var allCapsHeader = regexp.MustCompile(`^[A-Z\s]+:?$`)

// findSection returns the text from the first line containing one of the
// headers up to the next all-caps header line, or the whole text when no
// header line is found.
func findSection(text string, headers []string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsHeader(line, headers) {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if allCapsHeader.MatchString(strings.TrimSpace(lines[j])) && strings.TrimSpace(lines[j]) != "" {
				return strings.Join(lines[i:j], "\n")
			}
		}
		return strings.Join(lines[i:], "\n")
	}
	return text
}

func containsHeader(line string, headers []string) bool {
	lower := strings.ToLower(line)
	for _, header := range headers {
		if strings.Contains(lower, header) {
			return true
		}
	}
	return false
}
