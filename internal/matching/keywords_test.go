package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordDensityEmptyDocument(t *testing.T) {
	result := KeywordDensity("", []string{"python"})

	assert.Equal(t, 0.0, result.Score, "an empty document scores zero")
	assert.Empty(t, result.KeywordCount)
}

func TestKeywordDensityNoKeywords(t *testing.T) {
	result := KeywordDensity("some resume text", nil)

	assert.Equal(t, 0.0, result.Score)
}

func TestKeywordDensityCountsWholeWordsOnly(t *testing.T) {
	result := KeywordDensity("java javascript java", []string{"java"})

	assert.Equal(t, 2, result.KeywordCount["java"], "javascript must not count as java")
}

func TestKeywordDensityDistribution(t *testing.T) {
	text := "python developer\n\nworked with python daily\n\nenjoys hiking"
	result := KeywordDensity(text, []string{"python"})

	// Two of three sections contain the keyword.
	assert.Equal(t, 66.67, result.Distribution)
	assert.Greater(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
}

func TestKeywordDensityCreditIsCapped(t *testing.T) {
	// Every word is a keyword: density 1.0, scaled credit capped at 1.0.
	result := KeywordDensity("python python python python", []string{"python"})

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, 100.0, result.Density)
}
