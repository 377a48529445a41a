package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-rater/internal/ingestion"
	"github.com/jonathan/resume-rater/internal/resume"
)

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume",
	Short: "Extract a candidate profile from a resume document",
	Long:  "Extract skills, education, experience and contact details from a resume (.txt, .pdf or .docx) into structured JSON.",
	RunE:  runAnalyzeResume,
}

var (
	analyzeResumeFile   string
	analyzeResumeOutput string
)

func init() {
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume document (required)")
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(analyzeResumeCmd)
}

func runAnalyzeResume(_ *cobra.Command, _ []string) error {
	if analyzeResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}

	text, _, err := ingestion.IngestFile(analyzeResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	profile := resume.New(nil).Extract(text)

	return writeJSON(analyzeResumeOutput, profile)
}
