package matching

import "github.com/jonathan/resume-rater/internal/types"

// Scorer computes match reports under one scoring configuration. The zero
// value scores with default weights.
type Scorer struct {
	cfg Config
}

// NewScorer returns a Scorer using the given configuration, with zero-valued
// weights replaced by defaults.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg.withDefaults()}
}

// Score computes the full match report for one candidate against one job.
func (s *Scorer) Score(profile *types.CandidateProfile, job *types.JobRequirements) *types.MatchReport {
	cfg := s.cfg.withDefaults()

	skill := SkillMatch(profile.Skills, job.Skills, job.PrioritySkills, cfg)
	experience := ExperienceMatch(profile.Experience, job.Experience, cfg)
	education := EducationMatch(profile.Education, job.Education, cfg)

	overall := (skill.Score*cfg.SkillWeight +
		experience.Score*cfg.ExperienceWeight +
		education.Score*cfg.EducationWeight) /
		(cfg.SkillWeight + cfg.ExperienceWeight + cfg.EducationWeight)
	overall = round2(overall)

	ranking, percentile := rank(overall)

	return &types.MatchReport{
		OverallScore:           overall,
		Ranking:                ranking,
		Percentile:             percentile,
		SkillAnalysis:          skill,
		ExperienceAnalysis:     experience,
		EducationAnalysis:      education,
		KeywordDensity:         KeywordDensity(profile.RawText, job.Skills),
		ContentSimilarity:      ContentSimilarity(profile.RawText, job.Responsibilities),
		ImprovementSuggestions: Suggestions(profile, skill, experience, education),
	}
}

// rank maps an overall score to its tier and percentile band.
func rank(score float64) (types.Ranking, string) {
	switch {
	case score >= excellentThreshold:
		return types.RankingExcellent, "Top 10%"
	case score >= strongThreshold:
		return types.RankingStrong, "Top 20%"
	case score >= goodThreshold:
		return types.RankingGood, "Top 30%"
	case score >= fairThreshold:
		return types.RankingFair, "Top 40%"
	default:
		return types.RankingNeedsImprovement, "Below Average"
	}
}

// ScoreColor maps a percentage score to the hex color used when rendering
// reports.
func ScoreColor(percent float64) string {
	switch {
	case percent >= 80:
		return "#22c55e"
	case percent >= 60:
		return "#10b981"
	case percent >= 40:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}
