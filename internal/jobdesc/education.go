package jobdesc

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

// educationSectionCap bounds the education window when no blank line follows
// the section keyword.
const educationSectionCap = 300

var educationKeywords = []string{"education", "qualification", "degree", "academic"}

// degreeSynonyms lists the synonyms for each degree level, scanned low to
// high so a later (higher) level's required match overrides an earlier one.
var degreeSynonyms = []struct {
	level    types.DegreeLevel
	patterns []string
}{
	{types.DegreeHighSchool, []string{"high school", "ged", "secondary education"}},
	{types.DegreeAssociate, []string{"associate", "associate's", "aa", "a.a", "a.s"}},
	{types.DegreeBachelor, []string{"bachelor", "bachelor's", "bachelors", "ba", "b.a", "bs", "b.s", "undergraduate"}},
	{types.DegreeMaster, []string{"master", "master's", "masters", "ma", "m.a", "ms", "m.s", "mba", "graduate"}},
	{types.DegreeDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral"}},
}

var fieldPatterns = []*regexp.Regexp{
	regexp.MustCompile(`degree in ([a-z\s,]+)`),
	regexp.MustCompile(`background in ([a-z\s,]+)`),
	regexp.MustCompile(`([a-z\s,]+) degree`),
	regexp.MustCompile(`degree \(([a-z\s,]+)\)`),
}

// degreeLevelWords filter out field candidates that are really degree names.
var degreeLevelWords = []string{"bachelor", "master", "phd", "associate"}

// extractEducation finds the education section and classifies each mentioned
// degree level as required or preferred based on the wording that precedes
// it. A bare mention counts as required when no required level is set yet.
func extractEducation(text string) types.EducationRequirement {
	lower := strings.ToLower(text)
	section := educationSection(lower)

	var required, preferred types.DegreeLevel
	for _, group := range degreeSynonyms {
		for _, pattern := range group.patterns {
			escaped := regexp.QuoteMeta(pattern)
			if regexp.MustCompile(`(require|must have|necessary)(?:.*?)\b` + escaped + `\b`).MatchString(section) {
				required = group.level
				break
			}
			if regexp.MustCompile(`(prefer|ideally|nice to have)(?:.*?)\b` + escaped + `\b`).MatchString(section) {
				preferred = group.level
				break
			}
			if required == "" && regexp.MustCompile(`\b`+escaped+`\b`).MatchString(section) {
				required = group.level
			}
		}
	}

	fields := extractFields(section)

	return types.EducationRequirement{
		Required:    required,
		Preferred:   preferred,
		Fields:      fields,
		Description: describeEducation(required, preferred, fields),
	}
}

// educationSection returns the window from the first education keyword to the
// next blank line (capped at 300 chars), or the whole text when no keyword
// occurs.
func educationSection(lower string) string {
	for _, keyword := range educationKeywords {
		start := strings.Index(lower, keyword)
		if start < 0 {
			continue
		}
		end := strings.Index(lower[start:], "\n\n")
		if end < 0 {
			end = len(lower) - start
			if end > educationSectionCap {
				end = educationSectionCap
			}
		}
		return lower[start : start+end]
	}
	return lower
}

func extractFields(section string) []string {
	fields := make([]string, 0)
	for _, pattern := range fieldPatterns {
		for _, match := range pattern.FindAllStringSubmatch(section, -1) {
			field := strings.Trim(strings.TrimSpace(match[1]), ".,;()")
			if field == "" || isDegreeWord(field) {
				continue
			}
			fields = append(fields, field)
		}
	}
	return fields
}

func isDegreeWord(field string) bool {
	lower := strings.ToLower(field)
	for _, word := range degreeLevelWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func describeEducation(required, preferred types.DegreeLevel, fields []string) string {
	var description string
	switch {
	case required != "":
		description = "Required: " + titleDegree(required) + " degree"
		if preferred != "" && preferred != required {
			description += ", Preferred: " + titleDegree(preferred) + " degree"
		}
	case preferred != "":
		description = "Preferred: " + titleDegree(preferred) + " degree"
	default:
		description = "No specific degree requirements mentioned"
	}

	if len(fields) > 0 {
		shown := fields
		if len(shown) > 3 {
			shown = shown[:3]
		}
		description += " in " + strings.Join(shown, ", ")
		if len(fields) > 3 {
			description += " or related field"
		}
	}
	return description
}

// titleDegree renders a degree level for display ("high school" → "High School").
func titleDegree(level types.DegreeLevel) string {
	words := strings.Fields(string(level))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
