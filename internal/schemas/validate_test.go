package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-rater/internal/types"
)

func sampleReport() *types.MatchReport {
	return &types.MatchReport{
		OverallScore: 0.82,
		Ranking:      types.RankingStrong,
		Percentile:   "Top 20%",
		SkillAnalysis: types.SkillAnalysis{
			Score:           0.9,
			MatchedSkills:   []string{"python"},
			MissingSkills:   []string{"go"},
			MatchPercentage: 50.0,
			Details:         "Matched 1 of 2 required skills (50.0%).",
		},
		ExperienceAnalysis: types.ExperienceAnalysis{
			Score:           0.8,
			MatchPercentage: 80.0,
			Details:         "Candidate has 4.0 years of experience.",
		},
		EducationAnalysis: types.EducationAnalysis{
			Score:           1.0,
			DegreeMatched:   true,
			MatchPercentage: 100.0,
			Details:         "No specific education requirements mentioned.",
		},
		KeywordDensity: types.KeywordDensityAnalysis{
			Score:        0.5,
			KeywordCount: map[string]int{"python": 2},
			Density:      1.2,
			Distribution: 50.0,
		},
		ContentSimilarity: types.ContentSimilarityAnalysis{
			Score:               0.4,
			Similarity:          40.0,
			TopMatchingSections: []types.SectionMatch{},
		},
		ImprovementSuggestions: []string{"Add missing skills: go"},
	}
}

func TestResolveSchemaPathFindsRepoSchema(t *testing.T) {
	path := ResolveSchemaPath(MatchReportSchema)

	require.NotEmpty(t, path, "the match report schema should resolve from the package directory")
	assert.True(t, filepath.IsAbs(path), "resolved path should be absolute")
}

func TestValidateJSONAcceptsFullReport(t *testing.T) {
	schemaPath := ResolveSchemaPath(MatchReportSchema)
	require.NotEmpty(t, schemaPath)

	data, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	jsonPath := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(jsonPath, data, 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath), "a complete report should validate")
}

func TestValidateJSONStringRejectsBadRanking(t *testing.T) {
	schemaPath := ResolveSchemaPath(MatchReportSchema)
	require.NotEmpty(t, schemaPath)
	schemaContent, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	report := sampleReport()
	report.Ranking = "Mediocre Match"
	data, err := json.Marshal(report)
	require.NoError(t, err)

	err = ValidateJSONString(string(schemaContent), string(data))
	require.Error(t, err, "an unknown ranking should fail validation")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors, "validation error should carry field errors")
	assert.Contains(t, validationErr.Error(), "ranking", "the failing field should be named")
}

func TestValidateJSONStringRejectsMissingFields(t *testing.T) {
	schemaPath := ResolveSchemaPath(MatchReportSchema)
	require.NotEmpty(t, schemaPath)
	schemaContent, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	err = ValidateJSONString(string(schemaContent), `{"overall_score": 0.5}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr, "missing required fields should be a ValidationError")
}

func TestValidateJSONStringBadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "nonsense"}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr, "an invalid schema should be a SchemaLoadError")
}

func TestValidateJSONMissingFiles(t *testing.T) {
	err := ValidateJSON("/nonexistent/schema.json", "/nonexistent/report.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}
