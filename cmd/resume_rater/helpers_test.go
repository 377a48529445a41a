package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-rater/internal/types"
)

func TestLoadJobTextFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("We need a   Python developer.\r\n"), 0o644))

	text, err := loadJobText(context.Background(), path, "", false, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "We need a Python developer.", text)
}

func TestLoadJobTextRejectsBothSources(t *testing.T) {
	_, err := loadJobText(context.Background(), "job.txt", "https://example.com/job", false, zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadJobTextRequiresASource(t *testing.T) {
	_, err := loadJobText(context.Background(), "", "", false, zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestWriteJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := &types.MatchReport{OverallScore: 0.75, Ranking: types.RankingGood}

	require.NoError(t, writeJSON(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded types.MatchReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 0.75, decoded.OverallScore)
	assert.Equal(t, types.RankingGood, decoded.Ranking)
}

func TestWriteJSONToStdout(t *testing.T) {
	// Empty path writes to stdout and must not error.
	assert.NoError(t, writeJSON("", map[string]string{"status": "ok"}))
}

func TestBuildLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, buildLogger(false, false))
	assert.NotNil(t, buildLogger(true, true))
}
