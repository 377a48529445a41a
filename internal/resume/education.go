package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

var educationHeaders = []string{"education", "academic background", "academic qualifications", "qualifications"}

// degreeWithField captures a degree name followed by its field of study,
// e.g. "Bachelor of Science in Computer Science" or "M.S. in Statistics".
var degreeWithField = regexp.MustCompile(`(?i)(Bachelor|Master|Ph\.?D\.?|Doctorate|Associate|B\.S\.|B\.A\.|M\.S\.|M\.A\.|MBA)(?:'s)?[. ]*(?:of (?:Science|Arts|Engineering|Business) ?)?(?:degree in|in|of)? +([A-Za-z][A-Za-z ,]*)`)

// bareDegree catches degree mentions with no field attached.
var bareDegree = regexp.MustCompile(`(?i)(Bachelor|Master|Ph\.?D\.?|Doctorate|Associate|B\.S\.|B\.A\.|M\.S\.|M\.A\.|MBA|High School Diploma|GED)`)

// graduationYear matches plausible graduation years.
var graduationYear = regexp.MustCompile(`\b(19[89]\d|20[0-2]\d)\b`)

func extractEducation(text string) []types.EducationEntry {
	section := findSection(text, educationHeaders)
	entries := []types.EducationEntry{}
	seenDegrees := map[string]bool{}
	seenPairs := map[string]bool{}

	for _, loc := range degreeWithField.FindAllStringSubmatchIndex(section, -1) {
		degree := strings.TrimSpace(section[loc[2]:loc[3]])
		field := cleanField(section[loc[4]:loc[5]])
		key := strings.ToLower(degree) + "|" + strings.ToLower(field)
		if seenPairs[key] {
			continue
		}
		seenPairs[key] = true
		seenDegrees[strings.ToLower(degree)] = true
		entries = append(entries, types.EducationEntry{
			Degree: degree,
			Field:  field,
			Year:   yearNear(section, loc[0]),
		})
	}
	// Degrees mentioned with no field attached, unless already captured above.
	for _, loc := range bareDegree.FindAllStringIndex(section, -1) {
		degree := strings.TrimSpace(section[loc[0]:loc[1]])
		if seenDegrees[strings.ToLower(degree)] {
			continue
		}
		seenDegrees[strings.ToLower(degree)] = true
		entries = append(entries, types.EducationEntry{
			Degree: degree,
			Year:   yearNear(section, loc[0]),
		})
	}
	return entries
}

// yearNear looks for a graduation year in the text surrounding a degree
// mention, preferring the 150 characters after it.
func yearNear(section string, pos int) string {
	start := pos - 50
	if start < 0 {
		start = 0
	}
	end := pos + 150
	if end > len(section) {
		end = len(section)
	}
	if m := graduationYear.FindString(section[start:end]); m != "" {
		return m
	}
	return ""
}

// cleanField trims a captured field of study down to its first line and
// strips trailing filler words.
func cleanField(field string) string {
	if i := strings.IndexByte(field, '\n'); i >= 0 {
		field = field[:i]
	}
	field = strings.Trim(field, " ,.")
	words := strings.Fields(field)
	// Greedy capture often swallows the next phrase; keep at most four words.
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}
