package types

// Ranking is the categorical tier derived from the overall score.
type Ranking string

const (
	RankingExcellent        Ranking = "Excellent Match"
	RankingStrong           Ranking = "Strong Match"
	RankingGood             Ranking = "Good Match"
	RankingFair             Ranking = "Fair Match"
	RankingNeedsImprovement Ranking = "Needs Improvement"
)

// SkillAnalysis details how candidate skills line up with job skills.
// MatchedSkills and MissingSkills partition the job skill list.
type SkillAnalysis struct {
	Score           float64  `json:"score"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	PriorityMatched []string `json:"priority_matched"`
	PriorityMissing []string `json:"priority_missing"`
	MatchPercentage float64  `json:"match_percentage"`
	Details         string   `json:"details"`
}

// ExperienceAnalysis details the experience comparison. YearsRequired and
// YearsMatched are nil when the job has no explicit year requirement.
type ExperienceAnalysis struct {
	Score           float64  `json:"score"`
	YearsRequired   *int     `json:"years_required,omitempty"`
	YearsMatched    *float64 `json:"years_matched,omitempty"`
	MatchPercentage float64  `json:"match_percentage"`
	Details         string   `json:"details"`
}

// EducationAnalysis details the education comparison.
type EducationAnalysis struct {
	Score           float64       `json:"score"`
	DegreeRequired  []DegreeLevel `json:"degree_required,omitempty"`
	DegreeMatched   bool          `json:"degree_matched"`
	FieldMatch      []string      `json:"field_match,omitempty"`
	MatchPercentage float64       `json:"match_percentage"`
	Details         string        `json:"details"`
}

// KeywordDensityAnalysis reports how densely and evenly job keywords appear
// in the candidate document. Density and Distribution are percentages.
type KeywordDensityAnalysis struct {
	Score        float64        `json:"score"`
	KeywordCount map[string]int `json:"keyword_count"`
	Density      float64        `json:"density"`
	Distribution float64        `json:"distribution"`
}

// SectionMatch is one candidate-document section ranked by similarity to the
// job responsibilities. Similarity is a percentage.
type SectionMatch struct {
	Preview    string  `json:"preview"`
	Similarity float64 `json:"similarity"`
}

// ContentSimilarityAnalysis reports the term-vector similarity between the
// candidate document and the job responsibilities.
type ContentSimilarityAnalysis struct {
	Score               float64        `json:"score"`
	Similarity          float64        `json:"similarity"`
	TopMatchingSections []SectionMatch `json:"top_matching_sections"`
	Error               string         `json:"error,omitempty"`
}

// MatchReport is the full result of comparing one candidate document against
// one job description.
type MatchReport struct {
	OverallScore           float64                   `json:"overall_score"`
	Ranking                Ranking                   `json:"ranking"`
	Percentile             string                    `json:"percentile"`
	SkillAnalysis          SkillAnalysis             `json:"skill_analysis"`
	ExperienceAnalysis     ExperienceAnalysis        `json:"experience_analysis"`
	EducationAnalysis      EducationAnalysis         `json:"education_analysis"`
	KeywordDensity         KeywordDensityAnalysis    `json:"keyword_density"`
	ContentSimilarity      ContentSimilarityAnalysis `json:"content_similarity"`
	ImprovementSuggestions []string                  `json:"improvement_suggestions"`
}
