package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-rater/internal/fetch"
	"github.com/jonathan/resume-rater/internal/ingestion"
	"github.com/jonathan/resume-rater/internal/logger"
	"github.com/jonathan/resume-rater/internal/schemas"
)

// buildLogger constructs the CLI logger; failures fall back to a no-op
// logger so commands still run.
func buildLogger(jsonLogs, debug bool) *zap.Logger {
	log, err := logger.New(jsonLogs, debug)
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadJobText resolves job description text from a file path or a URL.
// Exactly one of path and url must be set.
func loadJobText(ctx context.Context, path, url string, useBrowser bool, log *zap.Logger) (string, error) {
	if path != "" && url != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	if path != "" {
		text, _, err := ingestion.IngestFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return text, nil
	}

	if url != "" {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = useBrowser
		opts.Logger = log

		page, err := fetch.JobPosting(ctx, url, opts)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return ingestion.CleanText(page.Text), nil
	}

	return "", fmt.Errorf("either --job or --job-url is required")
}

// writeJSON marshals v with indentation and writes it to path, or to stdout
// when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateReportFile checks a written report against the match report schema.
// Schema loading problems only warn; actual validation failures are errors.
func validateReportFile(jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.MatchReportSchema)
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated report does not validate against schema: %w", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate report against schema (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate report against schema: %v\n", err)
		}
	}
	return nil
}
