package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-rater/internal/types"
)

const testJobText = `Job Title: Backend Engineer
We are looking for a Backend Engineer with 3+ years of experience.
Requirements:
- Strong Python and SQL skills
- Bachelor degree in Computer Science
Responsibilities:
- Build and maintain APIs
- Review code and mentor juniors`

const testResumeText = `Jane Smith
jane.smith@example.com
(555) 123-4567

SKILLS
Python, SQL, Docker

EXPERIENCE
Software Engineer at Initech
2019 - 2023

EDUCATION
Bachelor of Science in Computer Science, 2018`

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := New(context.Background(), cfg)
	require.NoError(t, err, "server without database and auth should always construct")
	return s
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAnalyzeJobFromText(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := postJSON(t, s, "/v1/analyze/job", JobInput{Text: testJobText})

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	var job types.JobRequirements
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Contains(t, job.Skills, "python")
	assert.Equal(t, 3, job.Experience.MinYears)
}

func TestAnalyzeJobRequiresTextOrURL(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := postJSON(t, s, "/v1/analyze/job", JobInput{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "either text or url is required")
}

func TestAnalyzeJobRejectsTextAndURL(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := postJSON(t, s, "/v1/analyze/job", JobInput{Text: "some job", URL: "https://example.com/job"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mutually exclusive")
}

func TestAnalyzeResumeFromText(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := postJSON(t, s, "/v1/analyze/resume", ResumeInput{Text: testResumeText})

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	var profile types.CandidateProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "jane.smith@example.com", profile.Email)
	assert.Contains(t, profile.Skills, "python")
}

func TestAnalyzeResumeRejectsUnknownDocumentFormat(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := postJSON(t, s, "/v1/analyze/resume", ResumeInput{
		Filename:      "resume.odt",
		ContentBase64: "aGVsbG8=",
	})

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestMatchReturnsReport(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := postJSON(t, s, "/v1/match", MatchRequest{
		Resume: ResumeInput{Text: testResumeText},
		Job:    JobInput{Text: testJobText},
	})

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Report)
	assert.GreaterOrEqual(t, resp.Report.OverallScore, 0.0)
	assert.LessOrEqual(t, resp.Report.OverallScore, 1.0)
	assert.NotEmpty(t, resp.Report.Ranking)
	assert.NotEmpty(t, resp.ScoreColor)
	assert.Nil(t, resp.ID, "report should not be saved unless requested")
}

func TestMatchSaveWithoutDatabase(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := postJSON(t, s, "/v1/match", MatchRequest{
		Resume: ResumeInput{Text: testResumeText},
		Job:    JobInput{Text: testJobText},
		Save:   true,
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "report storage is not configured")
}

func TestReportEndpointsWithoutDatabase(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthRequiredWhenSecretConfigured(t *testing.T) {
	s := newTestServer(t, Config{JWTSecret: "test-secret"})

	rec := postJSON(t, s, "/v1/analyze/job", JobInput{Text: testJobText})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "requests without a token should be rejected")

	// Health stays open.
	healthRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, healthRec.Code)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	s := newTestServer(t, Config{JWTSecret: "test-secret"})

	token, err := s.jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)

	data, err := json.Marshal(JobInput{Text: testJobText})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze/job", bytes.NewReader(data))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
}
