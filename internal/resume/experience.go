package resume

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-rater/internal/types"
)

var experienceHeaders = []string{"experience", "work experience", "employment history", "professional experience"}

// titleCompany matches "Senior Software Engineer at Acme Corp" style lines.
var titleCompany = regexp.MustCompile(`(?i)((?:Sr\.?|Senior|Jr\.?|Junior|Lead|Principal|Staff)?[A-Za-z ]+(?:Developer|Engineer|Analyst|Manager|Director|Designer|Consultant|Specialist|Coordinator|Architect|Scientist))[ ]*(?:at|@|,|-|\|)[ ]*([A-Za-z][A-Za-z &.]*)`)

// yearRange matches "2019 - 2023", "2019 to Present" and similar spans.
var yearRange = regexp.MustCompile(`(?i)(\d{4})\s*(?:-|–|to)\s*(Present|Current|\d{4})`)

func extractExperience(text string) []types.ExperienceEntry {
	section := findSection(text, experienceHeaders)
	entries := []types.ExperienceEntry{}
	seen := map[string]bool{}

	for _, loc := range titleCompany.FindAllStringSubmatchIndex(section, -1) {
		title := strings.TrimSpace(section[loc[2]:loc[3]])
		company := cleanCompany(section[loc[4]:loc[5]])
		key := strings.ToLower(title) + "|" + strings.ToLower(company)
		if seen[key] {
			continue
		}
		seen[key] = true

		entry := types.ExperienceEntry{Title: title, Company: company}
		if start, end, ok := datesNear(section, loc[1]); ok {
			entry.StartDate = start
			entry.EndDate = end
			entry.Years = spanYears(start, end)
			entry.Duration = describeSpan(entry.Years)
		}
		entries = append(entries, entry)
	}
	return entries
}

// datesNear looks for a year range in the 120 characters following a matched
// title/company pair.
func datesNear(section string, pos int) (start, end string, ok bool) {
	limit := pos + 120
	if limit > len(section) {
		limit = len(section)
	}
	m := yearRange.FindStringSubmatch(section[pos:limit])
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// spanYears converts a start/end year pair to a year count. Open-ended spans
// ("Present", "Current") run to the current year. Negative spans clamp to 0.
func spanYears(start, end string) float64 {
	startYear, err := strconv.Atoi(start)
	if err != nil {
		return 0
	}
	endYear := time.Now().Year()
	if !strings.EqualFold(end, "present") && !strings.EqualFold(end, "current") {
		endYear, err = strconv.Atoi(end)
		if err != nil {
			return 0
		}
	}
	years := float64(endYear - startYear)
	if years < 0 {
		return 0
	}
	return years
}

func describeSpan(years float64) string {
	n := int(years)
	if n == 1 {
		return "1 year"
	}
	return strconv.Itoa(n) + " years"
}

// cleanCompany trims a captured company name down to its first line.
func cleanCompany(company string) string {
	if i := strings.IndexByte(company, '\n'); i >= 0 {
		company = company[:i]
	}
	return strings.Trim(company, " ,.-")
}
