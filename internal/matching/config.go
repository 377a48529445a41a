// Package matching computes compatibility scores between a candidate profile
// and a set of job requirements. All functions are pure: they read their
// inputs and the shared policy constants, build a fresh result, and hold no
// state between calls.
package matching

// Config carries the tunable scoring weights. Zero values are replaced by the
// documented defaults, so an empty Config behaves like DefaultConfig().
type Config struct {
	SkillWeight         float64 `json:"skill_weight" validate:"gte=0,lte=1"`
	PrioritySkillBonus  float64 `json:"priority_skill_bonus" validate:"gte=0"`
	ExperienceWeight    float64 `json:"experience_weight" validate:"gte=0,lte=1"`
	EducationWeight     float64 `json:"education_weight" validate:"gte=0,lte=1"`
	SkillMatchThreshold float64 `json:"skill_match_threshold" validate:"gte=0,lte=1"`
}

// DefaultConfig returns the standard scoring weights.
func DefaultConfig() Config {
	return Config{
		SkillWeight:         0.5,
		PrioritySkillBonus:  2.0,
		ExperienceWeight:    0.3,
		EducationWeight:     0.2,
		SkillMatchThreshold: 0.7,
	}
}

// withDefaults fills zero-valued weights from DefaultConfig. A caller that
// deliberately wants a zero weight should use a small positive value instead.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.SkillWeight == 0 {
		c.SkillWeight = defaults.SkillWeight
	}
	if c.PrioritySkillBonus == 0 {
		c.PrioritySkillBonus = defaults.PrioritySkillBonus
	}
	if c.ExperienceWeight == 0 {
		c.ExperienceWeight = defaults.ExperienceWeight
	}
	if c.EducationWeight == 0 {
		c.EducationWeight = defaults.EducationWeight
	}
	if c.SkillMatchThreshold == 0 {
		c.SkillMatchThreshold = defaults.SkillMatchThreshold
	}
	return c
}

// Scoring policy constants. These are policy knobs, not incidental detail:
// changing any of them changes the meaning of every historical report.
const (
	// degreeWeight and fieldWeight split the education score between degree
	// level and field of study.
	degreeWeight = 0.7
	fieldWeight  = 0.3

	// fieldMatchThreshold is the minimum field similarity counted as a match.
	fieldMatchThreshold = 0.7

	// containmentSimilarity is the credit for one field name containing the
	// other, and defaultFieldSimilarity the floor for unrelated fields.
	containmentSimilarity  = 0.7
	defaultFieldSimilarity = 0.2

	// densityScale maps raw keyword density to a score; 50 calibrates ~2%
	// density to full credit. densityWeight and distributionWeight combine
	// the two keyword signals.
	densityScale       = 50.0
	densityWeight      = 0.7
	distributionWeight = 0.3

	// maxSimilarityWeight and meanSimilarityWeight combine the best and the
	// average section similarity in the content score.
	maxSimilarityWeight  = 0.7
	meanSimilarityWeight = 0.3
)

// Ranking tier thresholds on the overall score.
const (
	excellentThreshold = 0.9
	strongThreshold    = 0.8
	goodThreshold      = 0.7
	fairThreshold      = 0.6
)
