package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-rater/internal/types"
)

func TestScoreEndToEnd(t *testing.T) {
	profile := &types.CandidateProfile{
		RawText: "Python developer with three years of backend work.",
		Skills:  []string{"python"},
		Education: []types.EducationEntry{
			{Degree: "Bachelor of Science", Field: "Computer Science"},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Developer", Years: 3},
		},
	}
	job := &types.JobRequirements{
		Skills:         []string{"python", "sql"},
		PrioritySkills: []string{"python"},
		Experience: types.ExperienceRequirement{
			MinYears:    5,
			Level:       types.LevelSenior,
			Description: "5+ years (Senior Level)",
		},
		Education: types.EducationRequirement{
			Required: types.DegreeBachelor,
			Fields:   []string{"computer science"},
		},
	}

	report := NewScorer(DefaultConfig()).Score(profile, job)

	// skill 1.0 (saturated priority bonus), experience 0.6, education 1.0:
	// (1.0*0.5 + 0.6*0.3 + 1.0*0.2) / 1.0 = 0.88.
	assert.Equal(t, 0.88, report.OverallScore)
	assert.Equal(t, types.RankingStrong, report.Ranking)
	assert.Equal(t, "Top 20%", report.Percentile)
	assert.Equal(t, 1.0, report.SkillAnalysis.Score)
	assert.Equal(t, 0.6, report.ExperienceAnalysis.Score)
	assert.Equal(t, 1.0, report.EducationAnalysis.Score)
	assert.NotEmpty(t, report.ImprovementSuggestions)
}

func TestScorePerfectWhenNothingRequired(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"go"}}
	job := &types.JobRequirements{}

	report := NewScorer(Config{SkillWeight: 0.7, ExperienceWeight: 0.2, EducationWeight: 0.1}).Score(profile, job)

	assert.Equal(t, 1.0, report.OverallScore, "all sub-scores at 1.0 must combine to 1.0 under any positive weights")
	assert.Equal(t, types.RankingExcellent, report.Ranking)
}

func TestScoreEmptyInputsProduceReport(t *testing.T) {
	report := NewScorer(DefaultConfig()).Score(&types.CandidateProfile{}, &types.JobRequirements{})

	assert.GreaterOrEqual(t, report.OverallScore, 0.0)
	assert.LessOrEqual(t, report.OverallScore, 1.0)
	assert.NotNil(t, report.ImprovementSuggestions)
}

func TestRankTiers(t *testing.T) {
	cases := []struct {
		score      float64
		ranking    types.Ranking
		percentile string
	}{
		{0.95, types.RankingExcellent, "Top 10%"},
		{0.9, types.RankingExcellent, "Top 10%"},
		{0.85, types.RankingStrong, "Top 20%"},
		{0.75, types.RankingGood, "Top 30%"},
		{0.65, types.RankingFair, "Top 40%"},
		{0.3, types.RankingNeedsImprovement, "Below Average"},
	}
	for _, c := range cases {
		ranking, percentile := rank(c.score)
		assert.Equal(t, c.ranking, ranking, "score %v", c.score)
		assert.Equal(t, c.percentile, percentile, "score %v", c.score)
	}
}

func TestScoreColorBands(t *testing.T) {
	assert.Equal(t, "#22c55e", ScoreColor(88))
	assert.Equal(t, "#10b981", ScoreColor(65))
	assert.Equal(t, "#f59e0b", ScoreColor(45))
	assert.Equal(t, "#ef4444", ScoreColor(10))
}
