// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirements outputs a human-readable summary of the extracted job
// requirements.
func (p *Printer) PrintJobRequirements(job *types.JobRequirements) {
	if job == nil {
		return
	}

	var sb strings.Builder

	if job.Title != "" {
		sb.WriteString(fmt.Sprintf("Role:      %s\n", job.Title))
	}
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", job.Location))
	}
	sb.WriteString(fmt.Sprintf("Level:     %s\n", job.Experience.Level))
	if job.Experience.MinYears > 0 {
		sb.WriteString(fmt.Sprintf("Years:     %d+\n", job.Experience.MinYears))
	}
	sb.WriteString("\n")

	if len(job.Skills) > 0 {
		sb.WriteString("Required skills:\n")
		count := min(len(job.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := job.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill))
			if containsString(job.PrioritySkills, skill) {
				sb.WriteString(" (priority)")
			}
			sb.WriteString("\n")
		}
		if len(job.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Skills)-maxItemsToShow))
		}
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the scored match report with per-dimension breakdowns.
func (p *Printer) PrintReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.0f%%  (%s)\n", report.OverallScore*100, report.Ranking))
	sb.WriteString(fmt.Sprintf("Percentile: %s\n", report.Percentile))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:     %.0f%%\n", report.SkillAnalysis.Score*100))
	sb.WriteString(fmt.Sprintf("Experience: %.0f%%\n", report.ExperienceAnalysis.Score*100))
	sb.WriteString(fmt.Sprintf("Education:  %.0f%%\n", report.EducationAnalysis.Score*100))
	sb.WriteString(fmt.Sprintf("Keywords:   %.0f%%\n", report.KeywordDensity.Score*100))
	sb.WriteString(fmt.Sprintf("Content:    %.0f%%\n", report.ContentSimilarity.Score*100))

	if len(report.SkillAnalysis.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(report.SkillAnalysis.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.SkillAnalysis.MissingSkills[i]))
		}
		if len(report.SkillAnalysis.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.SkillAnalysis.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))

	p.printSuggestions(report.ImprovementSuggestions)
}

func (p *Printer) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, suggestion := range suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, suggestion))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}

// PrintRankedCandidates outputs batch match results ordered by score.
func (p *Printer) PrintRankedCandidates(names []string, reports []*types.MatchReport) {
	if len(reports) == 0 || len(names) != len(reports) {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates scored: %d\n\n", len(reports)))

	for i, report := range reports {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, names[i]))
		sb.WriteString(fmt.Sprintf("    Score: %.0f%%  (%s)", report.OverallScore*100, report.Ranking))
		if i < len(reports)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
