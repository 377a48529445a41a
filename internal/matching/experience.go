package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

// jobYearPatterns pull a required year count out of free-form experience
// text. Tried in order; the first match wins, and for ranges the lower bound
// is taken.
var jobYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\s*\+\s*years?`),
	regexp.MustCompile(`(?i)minimum\s*of\s*(\d+)\s*years?`),
	regexp.MustCompile(`(?i)at\s*least\s*(\d+)\s*years?`),
	regexp.MustCompile(`(?i)(\d+)[-\s](\d+)\s*years?`),
}

// experiencePhrases map level wording to an implied year count when the text
// states no explicit number. Checked in this order, first hit wins.
var experiencePhrases = []struct {
	phrase string
	years  int
}{
	{"entry level", 0},
	{"junior", 1},
	{"mid-level", 3},
	{"mid level", 3},
	{"intermediate", 3},
	{"senior", 5},
	{"experienced", 4},
	{"principal", 8},
	{"lead", 6},
	{"manager", 5},
	{"director", 8},
	{"executive", 10},
}

// seniorityScale maps seniority wording to an ordinal score. Checked in this
// order; in job text the first hit wins, in candidate titles every hit raises
// the estimate.
var seniorityScale = []struct {
	term  string
	score float64
}{
	{"entry", 0.2},
	{"junior", 0.4},
	{"mid", 0.6},
	{"senior", 0.8},
	{"lead", 0.9},
	{"principal", 1.0},
	{"staff", 0.9},
	{"manager", 0.9},
	{"director", 1.0},
	{"vp", 1.0},
	{"head", 1.0},
	{"chief", 1.0},
}

// ExperienceMatch scores the candidate's work history against the job's
// experience requirement. With an explicit year count the score is the
// fraction of required years the candidate shows, capped at 1.0. Without one
// it falls back to comparing seniority levels.
func ExperienceMatch(entries []types.ExperienceEntry, req types.ExperienceRequirement, cfg Config) types.ExperienceAnalysis {
	if req.Description == "" {
		return types.ExperienceAnalysis{
			Score:           1.0,
			MatchPercentage: 100,
			Details:         "No specific experience requirements in job description.",
		}
	}

	jobYears, ok := requiredYears(req)
	if !ok {
		score := seniorityMatch(entries, req.Description)
		return types.ExperienceAnalysis{
			Score:           score,
			MatchPercentage: round1(score * 100),
			Details:         fmt.Sprintf("Seniority level match: %.2f", score),
		}
	}

	resumeYears := TotalExperienceYears(entries)

	score := 1.0
	percentage := 100.0
	if jobYears > 0 && resumeYears < float64(jobYears) {
		score = resumeYears / float64(jobYears)
		percentage = resumeYears / float64(jobYears) * 100
	}

	return types.ExperienceAnalysis{
		Score:           round2(score),
		YearsRequired:   &jobYears,
		YearsMatched:    &resumeYears,
		MatchPercentage: round1(percentage),
		Details:         fmt.Sprintf("Job requires %d years of experience. Resume shows %g years.", jobYears, resumeYears),
	}
}

// requiredYears resolves the job's year requirement: the structured minimum
// when present, else a number parsed from the description, else a count
// implied by level wording.
func requiredYears(req types.ExperienceRequirement) (int, bool) {
	if req.MinYears > 0 {
		return req.MinYears, true
	}
	for _, pattern := range jobYearPatterns {
		if m := pattern.FindStringSubmatch(req.Description); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years, true
			}
		}
	}
	lower := strings.ToLower(req.Description)
	for _, entry := range experiencePhrases {
		if strings.Contains(lower, entry.phrase) {
			return entry.years, true
		}
	}
	return 0, false
}

// seniorityMatch compares job and candidate seniority on the ordinal scale.
// Full credit when the candidate meets or exceeds the job level, proportional
// credit below it.
func seniorityMatch(entries []types.ExperienceEntry, jobExperience string) float64 {
	jobLower := strings.ToLower(jobExperience)

	jobSeniority := 0.5 // default to mid-level
	for _, level := range seniorityScale {
		if strings.Contains(jobLower, level.term) {
			jobSeniority = level.score
			break
		}
	}

	resumeSeniority := seniorityFromYears(TotalExperienceYears(entries))
	for _, entry := range entries {
		title := strings.ToLower(entry.Title)
		for _, level := range seniorityScale {
			if strings.Contains(title, level.term) && level.score > resumeSeniority {
				resumeSeniority = level.score
			}
		}
	}

	if resumeSeniority >= jobSeniority {
		return 1.0
	}
	if jobSeniority == 0 {
		return 1.0
	}
	return resumeSeniority / jobSeniority
}

func seniorityFromYears(years float64) float64 {
	switch {
	case years >= 10:
		return 1.0
	case years >= 8:
		return 0.9
	case years >= 5:
		return 0.8
	case years >= 3:
		return 0.6
	case years >= 1:
		return 0.4
	default:
		return 0.2
	}
}

var (
	durationYears  = regexp.MustCompile(`(\d+)\s*years?`)
	durationMonths = regexp.MustCompile(`(\d+)\s*months?`)
	dateYear       = regexp.MustCompile(`20\d{2}|19\d{2}`)
)

// TotalExperienceYears sums the duration of all experience entries, rounded
// to one decimal. Each entry contributes its Years field when set, else a
// span parsed from its Duration string ("2 years 3 months"), else the
// difference between its start and end years, with open-ended entries running
// to the current year.
func TotalExperienceYears(entries []types.ExperienceEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		switch {
		case entry.Years > 0:
			total += entry.Years
		case entry.Duration != "":
			total += durationToYears(entry.Duration)
		case entry.StartDate != "":
			total += spanToYears(entry.StartDate, entry.EndDate)
		}
	}
	return round1(total)
}

func durationToYears(duration string) float64 {
	lower := strings.ToLower(duration)
	years := 0.0
	if m := durationYears.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		years += float64(n)
	}
	if m := durationMonths.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		years += float64(n) / 12
	}
	return years
}

func spanToYears(startDate, endDate string) float64 {
	start := dateYear.FindString(startDate)
	if start == "" {
		return 0
	}
	endYear := clock().Year()
	if !strings.EqualFold(endDate, "present") && !strings.EqualFold(endDate, "current") && endDate != "" {
		end := dateYear.FindString(endDate)
		if end == "" {
			return 0
		}
		endYear, _ = strconv.Atoi(end)
	}
	startYear, _ := strconv.Atoi(start)
	years := float64(endYear - startYear)
	if years < 0 {
		return 0
	}
	return years
}
