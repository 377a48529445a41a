package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillMatchNoJobSkillsIsPerfect(t *testing.T) {
	result := SkillMatch([]string{"python", "go"}, nil, nil, DefaultConfig())

	assert.Equal(t, 1.0, result.Score, "no required skills means a perfect match")
	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestSkillMatchPartitionsJobSkills(t *testing.T) {
	result := SkillMatch(
		[]string{"python", "docker"},
		[]string{"python", "sql", "docker", "kubernetes"},
		nil,
		DefaultConfig(),
	)

	assert.Equal(t, []string{"python", "docker"}, result.MatchedSkills)
	assert.Equal(t, []string{"sql", "kubernetes"}, result.MissingSkills)
	assert.Equal(t, 0.5, result.Score)
	assert.Equal(t, 50.0, result.MatchPercentage)
}

func TestSkillMatchSubstringCoverage(t *testing.T) {
	result := SkillMatch([]string{"postgresql"}, []string{"sql"}, nil, DefaultConfig())

	assert.Equal(t, []string{"sql"}, result.MatchedSkills, "a skill contained in a broader one counts as covered")
	assert.Equal(t, 1.0, result.Score)
}

func TestSkillMatchPriorityBonusSaturates(t *testing.T) {
	result := SkillMatch(
		[]string{"python"},
		[]string{"python", "sql"},
		[]string{"python"},
		DefaultConfig(),
	)

	// Half the skills are covered, but the fully-matched priority skill
	// carries a 2.0 bonus at weight 0.5 and saturates the score.
	assert.Equal(t, 1.0, result.Score, "full priority coverage should saturate the score")
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, []string{"sql"}, result.MissingSkills)
	assert.Equal(t, []string{"python"}, result.PriorityMatched)
	assert.Empty(t, result.PriorityMissing)
	assert.Equal(t, 50.0, result.MatchPercentage)
}

func TestSkillMatchScoreStaysInRange(t *testing.T) {
	cases := [][3][]string{
		{{}, {"go"}, {}},
		{{"go"}, {"go"}, {"go"}},
		{{"go", "rust"}, {"go", "rust", "c"}, {"go", "rust"}},
	}
	for _, c := range cases {
		result := SkillMatch(c[0], c[1], c[2], DefaultConfig())
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 1.0)
	}
}
