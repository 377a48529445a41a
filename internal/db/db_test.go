package db

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-rater/internal/types"
)

func TestStoredReportRoundTripsThroughJSON(t *testing.T) {
	report := &types.MatchReport{
		OverallScore: 0.82,
		Ranking:      types.RankingStrong,
		Percentile:   "Top 20%",
	}
	stored := StoredReport{
		ID:           uuid.New(),
		ResumeName:   "jane_smith.pdf",
		JobTitle:     "Backend Engineer",
		OverallScore: report.OverallScore,
		Ranking:      string(report.Ranking),
		Report:       report,
	}

	data, err := json.Marshal(stored)
	require.NoError(t, err)

	var decoded StoredReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, stored.ID, decoded.ID)
	assert.Equal(t, "Backend Engineer", decoded.JobTitle)
	require.NotNil(t, decoded.Report)
	assert.Equal(t, types.RankingStrong, decoded.Report.Ranking)
}

func TestStoredReportOmitsFullReportInSummaries(t *testing.T) {
	stored := StoredReport{
		ID:           uuid.New(),
		OverallScore: 0.5,
		Ranking:      string(types.RankingFair),
	}

	data, err := json.Marshal(stored)
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"report"`, "summary rows should not serialize a report payload")
}

func TestReportFiltersZeroValue(t *testing.T) {
	var filters ReportFilters

	assert.Empty(t, filters.JobTitle)
	assert.Empty(t, filters.Ranking)
	assert.Zero(t, filters.MinScore)
	assert.Zero(t, filters.Limit, "zero limit means the default limit applies at query time")
}
