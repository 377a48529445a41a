package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-rater/internal/jobdesc"
	"github.com/jonathan/resume-rater/internal/observability"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Extract structured requirements from a job description",
	Long:  "Extract skills, experience, education and responsibilities from a job description file or URL into structured JSON.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobFile       string
	analyzeJobURL        string
	analyzeJobOutput     string
	analyzeJobUseBrowser bool
	analyzeJobVerbose    bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file")
	analyzeJobCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeJobCmd.Flags().BoolVar(&analyzeJobUseBrowser, "use-browser", false, "Render the posting in a headless browser when plain fetch yields too little text")
	analyzeJobCmd.Flags().BoolVarP(&analyzeJobVerbose, "verbose", "v", false, "Print a formatted summary")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	log := buildLogger(false, analyzeJobVerbose)
	defer func() { _ = log.Sync() }()

	text, err := loadJobText(context.Background(), analyzeJobFile, analyzeJobURL, analyzeJobUseBrowser, log)
	if err != nil {
		return err
	}

	job := jobdesc.New(nil).Extract(text)

	if err := writeJSON(analyzeJobOutput, job); err != nil {
		return err
	}

	if analyzeJobVerbose {
		observability.NewPrinter(os.Stderr).PrintJobRequirements(job)
	}

	return nil
}
