package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-rater/internal/types"
)

// StoredReport is one persisted match report row. Report is nil for listing
// queries, which only load the summary columns.
type StoredReport struct {
	ID           uuid.UUID          `json:"id"`
	ResumeName   string             `json:"resume_name,omitempty"`
	JobTitle     string             `json:"job_title,omitempty"`
	OverallScore float64            `json:"overall_score"`
	Ranking      string             `json:"ranking"`
	Report       *types.MatchReport `json:"report,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// SaveReport stores a finished match report and returns its ID. Saving the
// same ID again replaces the stored report.
func (db *DB) SaveReport(ctx context.Context, id uuid.UUID, resumeName, jobTitle string, report *types.MatchReport) (uuid.UUID, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}

	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_reports (id, resume_name, job_title, overall_score, ranking, report)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET resume_name = $2, job_title = $3,
		   overall_score = $4, ranking = $5, report = $6, created_at = NOW()`,
		id, resumeName, jobTitle, report.OverallScore, string(report.Ranking), jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// GetReport retrieves a stored report by ID. Returns (nil, nil) when no
// report with that ID exists.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*StoredReport, error) {
	var stored StoredReport
	var reportBytes []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_name, job_title, overall_score, ranking, report, created_at
		 FROM match_reports WHERE id = $1`,
		id,
	).Scan(&stored.ID, &stored.ResumeName, &stored.JobTitle, &stored.OverallScore,
		&stored.Ranking, &reportBytes, &stored.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if len(reportBytes) > 0 {
		var report types.MatchReport
		if err := json.Unmarshal(reportBytes, &report); err != nil {
			return nil, fmt.Errorf("failed to decode stored report: %w", err)
		}
		stored.Report = &report
	}

	return &stored, nil
}

// ReportFilters holds optional filters for listing reports.
type ReportFilters struct {
	JobTitle string
	Ranking  string
	MinScore float64
	Limit    int
}

// ListReports retrieves report summaries, newest first, with optional
// filters. The full report JSON is not loaded.
func (db *DB) ListReports(ctx context.Context, filters ReportFilters) ([]StoredReport, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, resume_name, job_title, overall_score, ranking, created_at
		FROM match_reports WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.JobTitle != "" {
		query += fmt.Sprintf(" AND job_title ILIKE $%d", argNum)
		args = append(args, "%"+filters.JobTitle+"%")
		argNum++
	}
	if filters.Ranking != "" {
		query += fmt.Sprintf(" AND ranking = $%d", argNum)
		args = append(args, filters.Ranking)
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []StoredReport
	for rows.Next() {
		var stored StoredReport
		if err := rows.Scan(&stored.ID, &stored.ResumeName, &stored.JobTitle,
			&stored.OverallScore, &stored.Ranking, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, stored)
	}
	return reports, nil
}
