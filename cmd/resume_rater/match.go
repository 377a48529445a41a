package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-rater/internal/config"
	"github.com/jonathan/resume-rater/internal/db"
	"github.com/jonathan/resume-rater/internal/ingestion"
	"github.com/jonathan/resume-rater/internal/jobdesc"
	"github.com/jonathan/resume-rater/internal/matching"
	"github.com/jonathan/resume-rater/internal/observability"
	"github.com/jonathan/resume-rater/internal/resume"
	"github.com/jonathan/resume-rater/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one or more resumes against a job description",
	Long:  "Score resume documents against a job description and emit full match reports. With multiple resumes the candidates are ranked by overall score.",
	RunE:  runMatch,
}

var (
	matchResumes    []string
	matchJob        string
	matchJobURL     string
	matchOutput     string
	matchConfigPath string
	matchDBURL      string
	matchSave       bool
	matchUseBrowser bool
	matchVerbose    bool
	matchJSONLogs   bool
	matchDebug      bool
)

// matchWorkers caps concurrent resume scoring in batch mode.
const matchWorkers = 4

func init() {
	matchCmd.Flags().StringArrayVarP(&matchResumes, "resume", "r", nil, "Path to resume document (repeatable for batch ranking)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job posting from")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVar(&matchDBURL, "db-url", "", "PostgreSQL URL for saving reports (default: DATABASE_URL env var)")
	matchCmd.Flags().BoolVar(&matchSave, "save", false, "Persist the reports to the database")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Render the posting in a headless browser when plain fetch yields too little text")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print formatted report summaries")
	matchCmd.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit logs as JSON")
	matchCmd.Flags().BoolVar(&matchDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(matchCmd)
}

// scoredResume pairs a resume path with its finished report.
type scoredResume struct {
	Resume string             `json:"resume"`
	ID     *uuid.UUID         `json:"id,omitempty"`
	Report *types.MatchReport `json:"report"`
}

func runMatch(_ *cobra.Command, _ []string) error {
	log := buildLogger(matchJSONLogs, matchDebug)
	defer func() { _ = log.Sync() }()

	var fileCfg config.Config
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}

	flagCfg := config.Config{
		Job:         matchJob,
		JobURL:      matchJobURL,
		Output:      matchOutput,
		DatabaseURL: matchDBURL,
	}
	cfg := flagCfg.MergeWithDefaults(fileCfg)
	cfg.UseBrowser = matchUseBrowser || fileCfg.UseBrowser
	if err := cfg.Validate(); err != nil {
		return err
	}

	resumes := matchResumes
	if len(resumes) == 0 {
		if cfg.Resume == "" {
			return fmt.Errorf("at least one --resume is required")
		}
		resumes = []string{cfg.Resume}
	}

	ctx := context.Background()

	jobText, err := loadJobText(ctx, cfg.Job, cfg.JobURL, cfg.UseBrowser, log)
	if err != nil {
		return err
	}
	job := jobdesc.New(nil).Extract(jobText)

	scorer := matching.NewScorer(cfg.Weights)
	extractor := resume.New(nil)

	results := make([]scoredResume, len(resumes))
	g := new(errgroup.Group)
	g.SetLimit(matchWorkers)
	for i, path := range resumes {
		g.Go(func() error {
			text, _, err := ingestion.IngestFile(path)
			if err != nil {
				return fmt.Errorf("resume %s: %w", path, err)
			}
			profile := extractor.Extract(text)
			results[i] = scoredResume{
				Resume: path,
				Report: scorer.Score(profile, job),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Rank candidates by overall score, best first.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Report.OverallScore > results[b].Report.OverallScore
	})

	if matchSave {
		if err := saveReports(ctx, cfg.DatabaseURL, job.Title, results); err != nil {
			return err
		}
	}

	if len(results) == 1 {
		if err := writeJSON(cfg.Output, results[0].Report); err != nil {
			return err
		}
		if cfg.Output != "" {
			if err := validateReportFile(cfg.Output); err != nil {
				return err
			}
		}
	} else {
		if err := writeJSON(cfg.Output, results); err != nil {
			return err
		}
	}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stderr)
		if len(results) == 1 {
			printer.PrintReport(results[0].Report)
		} else {
			names := make([]string, len(results))
			reports := make([]*types.MatchReport, len(results))
			for i, result := range results {
				names[i] = filepath.Base(result.Resume)
				reports[i] = result.Report
			}
			printer.PrintRankedCandidates(names, reports)
		}
	}

	return nil
}

// saveReports persists all reports and fills in their assigned IDs.
func saveReports(ctx context.Context, databaseURL, jobTitle string, results []scoredResume) error {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("--save requires --db-url or the DATABASE_URL environment variable")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	for i := range results {
		id, err := database.SaveReport(ctx, uuid.Nil, filepath.Base(results[i].Resume), jobTitle, results[i].Report)
		if err != nil {
			return err
		}
		results[i].ID = &id
	}
	return nil
}
