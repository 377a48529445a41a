package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

var (
	wordPattern    = regexp.MustCompile(`\b\w+\b`)
	sectionPattern = regexp.MustCompile(`\n\s*\n`)
)

// KeywordDensity measures how densely and how evenly the job keywords appear
// in the candidate document. Density is the fraction of document words that
// are keyword hits, distribution the fraction of blank-line-delimited
// sections containing at least one keyword. Both are reported as percentages.
func KeywordDensity(resumeText string, jobKeywords []string) types.KeywordDensityAnalysis {
	empty := types.KeywordDensityAnalysis{KeywordCount: map[string]int{}}
	if resumeText == "" || len(jobKeywords) == 0 {
		return empty
	}

	lower := strings.ToLower(resumeText)
	totalWords := len(wordPattern.FindAllString(lower, -1))
	if totalWords == 0 {
		return empty
	}

	keywordCount := map[string]int{}
	totalHits := 0
	patterns := make([]*regexp.Regexp, len(jobKeywords))
	for i, keyword := range jobKeywords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
		hits := len(patterns[i].FindAllString(lower, -1))
		if hits > 0 {
			keywordCount[keyword] = hits
			totalHits += hits
		}
	}

	density := float64(totalHits) / float64(totalWords)

	sections := sectionPattern.Split(resumeText, -1)
	withKeywords := 0
	for _, section := range sections {
		sectionLower := strings.ToLower(section)
		for _, pattern := range patterns {
			if pattern.MatchString(sectionLower) {
				withKeywords++
				break
			}
		}
	}
	distribution := 0.0
	if len(sections) > 0 {
		distribution = float64(withKeywords) / float64(len(sections))
	}

	densityCredit := density * densityScale
	if densityCredit > 1 {
		densityCredit = 1
	}
	score := densityWeight*densityCredit + distributionWeight*distribution

	return types.KeywordDensityAnalysis{
		Score:        round2(score),
		KeywordCount: keywordCount,
		Density:      round2(density * 100),
		Distribution: round2(distribution * 100),
	}
}
