package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-rater/internal/db"
	"github.com/jonathan/resume-rater/internal/ingestion"
	"github.com/jonathan/resume-rater/internal/matching"
	"github.com/jonathan/resume-rater/internal/types"
)

// JobInput carries a job description either inline or by URL.
type JobInput struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// ResumeInput carries a candidate document either as plain text or as an
// encoded file. Filename determines how ContentBase64 is decoded.
type ResumeInput struct {
	Text          string `json:"text,omitempty"`
	Filename      string `json:"filename,omitempty"`
	ContentBase64 string `json:"content_base64,omitempty"`
}

// MatchRequest represents the request body for /v1/match.
type MatchRequest struct {
	Resume ResumeInput `json:"resume"`
	Job    JobInput    `json:"job"`
	Save   bool        `json:"save,omitempty"`
}

// MatchResponse represents the response for /v1/match.
type MatchResponse struct {
	ID         *uuid.UUID         `json:"id,omitempty"`
	Report     *types.MatchReport `json:"report"`
	ScoreColor string             `json:"score_color"`
}

// resolveJobText turns a JobInput into cleaned job description text.
func (s *Server) resolveJobText(r *http.Request, input JobInput) (string, error) {
	switch {
	case input.Text != "" && input.URL != "":
		return "", &ErrValidation{Field: "job", Message: "text and url are mutually exclusive"}
	case input.Text != "":
		return ingestion.CleanText(input.Text), nil
	case input.URL != "":
		text, err := s.fetchJobText(r.Context(), input.URL)
		if err != nil {
			return "", err
		}
		return text, nil
	default:
		return "", &ErrValidation{Field: "job", Message: "either text or url is required"}
	}
}

// resolveResumeText turns a ResumeInput into cleaned candidate text.
func (s *Server) resolveResumeText(input ResumeInput) (string, error) {
	switch {
	case input.Text != "" && input.ContentBase64 != "":
		return "", &ErrValidation{Field: "resume", Message: "text and content_base64 are mutually exclusive"}
	case input.Text != "":
		return ingestion.CleanText(input.Text), nil
	case input.ContentBase64 != "":
		if input.Filename == "" {
			return "", &ErrValidation{Field: "resume.filename", Message: "required with content_base64"}
		}
		data, err := base64.StdEncoding.DecodeString(input.ContentBase64)
		if err != nil {
			return "", &ErrValidation{Field: "resume.content_base64", Message: "invalid base64 encoding"}
		}
		text, err := ingestion.ExtractDocumentText(input.Filename, data)
		if err != nil {
			return "", &ErrUnsupportedDocument{Filename: input.Filename, Cause: err}
		}
		return ingestion.CleanText(text), nil
	default:
		return "", &ErrValidation{Field: "resume", Message: "either text or content_base64 is required"}
	}
}

// handleAnalyzeJob extracts structured requirements from a job description.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var input JobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	text, err := s.resolveJobText(r, input)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.jobs.Extract(text))
}

// handleAnalyzeResume extracts a candidate profile from a resume document.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var input ResumeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	text, err := s.resolveResumeText(input)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.resumes.Extract(text))
}

// handleMatch scores a candidate document against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resumeText, err := s.resolveResumeText(req.Resume)
	if err != nil {
		s.respondError(w, err)
		return
	}
	jobText, err := s.resolveJobText(r, req.Job)
	if err != nil {
		s.respondError(w, err)
		return
	}

	profile := s.resumes.Extract(resumeText)
	job := s.jobs.Extract(jobText)
	report := s.scorer.Score(profile, job)

	resp := MatchResponse{
		Report:     report,
		ScoreColor: matching.ScoreColor(report.OverallScore * 100),
	}

	if req.Save {
		if s.db == nil {
			s.respondError(w, &ErrStorageDisabled{})
			return
		}
		id, err := s.db.SaveReport(r.Context(), uuid.Nil, req.Resume.Filename, job.Title, report)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save report: "+err.Error())
			return
		}
		resp.ID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetReport returns a stored report by ID.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondError(w, &ErrStorageDisabled{})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.respondError(w, &ErrValidation{Field: "id", Message: "invalid report ID format"})
		return
	}

	stored, err := s.db.GetReport(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load report: "+err.Error())
		return
	}
	if stored == nil {
		s.respondError(w, &ErrReportNotFound{ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleListReports returns stored report summaries, newest first.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondError(w, &ErrStorageDisabled{})
		return
	}

	filters := db.ReportFilters{
		JobTitle: r.URL.Query().Get("job_title"),
		Ranking:  r.URL.Query().Get("ranking"),
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		minScore, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.respondError(w, &ErrValidation{Field: "min_score", Message: "must be a number"})
			return
		}
		filters.MinScore = minScore
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			s.respondError(w, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		filters.Limit = limit
	}

	reports, err := s.db.ListReports(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list reports: "+err.Error())
		return
	}
	if reports == nil {
		reports = []db.StoredReport{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"reports": reports})
}
