package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-rater/internal/matching"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigValidJSON(t *testing.T) {
	content := `{
		"job_url": "https://example.com/job",
		"output": "report.json",
		"verbose": true,
		"port": 9090,
		"weights": {"skill_weight": 0.6, "experience_weight": 0.25, "education_weight": 0.15}
	}`

	cfg, err := LoadConfig(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "report.json", cfg.Output)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 0.6, cfg.Weights.SkillWeight)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfigFileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidateRejectsJobAndJobURL(t *testing.T) {
	jobFile := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("job text"), 0o644))

	cfg := &Config{Job: jobFile, JobURL: "https://example.com/job"}
	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidateRejectsOutOfRangeWeights(t *testing.T) {
	cfg := &Config{Weights: matching.Config{SkillWeight: 1.5}}
	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scoring weights")
}

func TestValidateRejectsMissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.pdf")}
	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidateAcceptsEmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Job: "job.txt", Port: 9090}
	defaults := Config{
		Job:         "default-job.txt",
		Output:      "report.json",
		DatabaseURL: "postgres://localhost/rater",
		Port:        8080,
		Weights:     matching.DefaultConfig(),
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "job.txt", merged.Job, "explicit values win over defaults")
	assert.Equal(t, "report.json", merged.Output, "empty values take defaults")
	assert.Equal(t, "postgres://localhost/rater", merged.DatabaseURL)
	assert.Equal(t, 9090, merged.Port, "explicit port wins")
	assert.Equal(t, 24, merged.JWTExpirationHours, "token lifetime falls back to 24 hours")
	assert.Equal(t, matching.DefaultConfig(), merged.Weights, "zero weights take defaults")
}
