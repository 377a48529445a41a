package jobdesc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

// yearPatterns are tried in order; the first match fixes the year bounds.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:to|-)\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?`),
	regexp.MustCompile(`minimum\s*of\s*(\d+)\s*years?`),
	regexp.MustCompile(`at\s*least\s*(\d+)\s*years?`),
}

// levelKeywords maps each level to its indicator words. Scanned in
// Entry→Expert order; the first level with any hit overrides the numeric
// inference.
var levelKeywords = []struct {
	level    types.ExperienceLevel
	keywords []string
}{
	{types.LevelEntry, []string{"entry", "junior", "beginner", "trainee", "internship"}},
	{types.LevelMid, []string{"mid", "intermediate", "associate"}},
	{types.LevelSenior, []string{"senior", "lead", "experienced", "advanced"}},
	{types.LevelExpert, []string{"expert", "principal", "director", "head", "chief"}},
}

// extractExperience derives the experience requirement from job text: a year
// range or bound from the first matching pattern, a level from the numeric
// bound, then a level override from keywords anywhere in the text.
func extractExperience(text string) types.ExperienceRequirement {
	lower := strings.ToLower(text)

	minYears := 0
	var maxYears *int
	for _, pattern := range yearPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		minYears, _ = strconv.Atoi(match[1])
		if len(match) > 2 && match[2] != "" {
			upper, _ := strconv.Atoi(match[2])
			maxYears = &upper
		}
		break
	}

	level := levelFromYears(minYears)
	for _, entry := range levelKeywords {
		if containsAny(lower, entry.keywords) {
			level = entry.level
			break
		}
	}

	return types.ExperienceRequirement{
		MinYears:    minYears,
		MaxYears:    maxYears,
		Level:       level,
		Description: describeExperience(minYears, maxYears, level),
	}
}

func levelFromYears(minYears int) types.ExperienceLevel {
	switch {
	case minYears <= 1:
		return types.LevelEntry
	case minYears <= 3:
		return types.LevelMid
	case minYears <= 5:
		return types.LevelSenior
	default:
		return types.LevelExpert
	}
}

func describeExperience(minYears int, maxYears *int, level types.ExperienceLevel) string {
	if minYears > 0 {
		if maxYears != nil {
			return fmt.Sprintf("%d-%d years (%s)", minYears, *maxYears, level)
		}
		return fmt.Sprintf("%d+ years (%s)", minYears, level)
	}
	return string(level)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
