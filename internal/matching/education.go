package matching

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

// degreeHierarchy ranks degree levels for partial-credit matching. Degrees
// outside the table (high school) rank 0 and earn credit only on an exact
// match.
var degreeHierarchy = map[types.DegreeLevel]int{
	types.DegreeAssociate: 1,
	types.DegreeBachelor:  2,
	types.DegreeMaster:    3,
	types.DegreeDoctorate: 4,
}

// relatedFields is a curated similarity table between fields of study,
// consulted in both directions.
var relatedFields = map[string]map[string]float64{
	"computer science": {
		"software engineering":   0.9,
		"information technology": 0.8,
		"data science":           0.8,
		"information systems":    0.7,
		"mathematics":            0.6,
		"engineering":            0.6,
	},
	"data science": {
		"statistics":       0.9,
		"mathematics":      0.8,
		"computer science": 0.8,
		"analytics":        0.9,
		"machine learning": 0.9,
	},
	"business": {
		"finance":    0.8,
		"marketing":  0.7,
		"economics":  0.8,
		"management": 0.9,
		"accounting": 0.7,
		"mba":        0.9,
	},
	"engineering": {
		"mechanical engineering": 0.9,
		"electrical engineering": 0.8,
		"civil engineering":      0.7,
		"computer engineering":   0.8,
		"software engineering":   0.7,
	},
}

// EducationMatch scores the candidate's education against the job's
// requirement. The score splits 70/30 between degree level and field of
// study; a job with no education requirement scores 1.0.
func EducationMatch(entries []types.EducationEntry, req types.EducationRequirement, cfg Config) types.EducationAnalysis {
	if req.Empty() {
		return types.EducationAnalysis{
			Score:           1.0,
			DegreeMatched:   true,
			MatchPercentage: 100,
			Details:         "No specific education requirements in job description.",
		}
	}

	requiredDegrees := requiredDegreeLevels(req)
	requiredFields := lowerAll(req.Fields)
	resumeDegrees := degreesFromEntries(entries)
	resumeFields := fieldsFromEntries(entries)

	degreeScore := 0.0
	matchedDegrees := []types.DegreeLevel{}
	for _, required := range requiredDegrees {
		for _, held := range resumeDegrees {
			score := degreeMatchScore(held, required)
			if score > 0 {
				if score > degreeScore {
					degreeScore = score
				}
				matchedDegrees = append(matchedDegrees, required)
			}
		}
	}

	fieldScore := 0.0
	matchedFields := []string{}
	for _, required := range requiredFields {
		for _, held := range resumeFields {
			if FieldSimilarity(held, required) >= fieldMatchThreshold {
				fieldScore = 1.0
				matchedFields = append(matchedFields, required)
			}
		}
	}
	if len(requiredFields) == 0 {
		fieldScore = 1.0
	}

	combined := degreeWeight*degreeScore + fieldWeight*fieldScore

	degreeMatched := true
	if len(requiredDegrees) > 0 {
		degreeMatched = len(matchedDegrees) > 0
	}

	return types.EducationAnalysis{
		Score:           round2(combined),
		DegreeRequired:  requiredDegrees,
		DegreeMatched:   degreeMatched,
		FieldMatch:      matchedFields,
		MatchPercentage: round1(combined * 100),
		Details:         educationDetails(requiredDegrees, matchedDegrees, requiredFields, matchedFields),
	}
}

// requiredDegreeLevels resolves the degree demanded by the job: the required
// level when stated, else the preferred one.
func requiredDegreeLevels(req types.EducationRequirement) []types.DegreeLevel {
	if req.Required != "" {
		return []types.DegreeLevel{req.Required}
	}
	if req.Preferred != "" {
		return []types.DegreeLevel{req.Preferred}
	}
	return nil
}

// degreeMatchScore gives full credit for meeting or exceeding the required
// level, proportional credit below it, and zero when either side is
// unranked.
func degreeMatchScore(held, required types.DegreeLevel) float64 {
	if held == required {
		return 1.0
	}
	heldLevel := degreeHierarchy[held]
	requiredLevel := degreeHierarchy[required]
	if heldLevel > requiredLevel {
		return 1.0
	}
	if heldLevel > 0 && requiredLevel > 0 {
		return float64(heldLevel) / float64(requiredLevel)
	}
	return 0.0
}

// FieldSimilarity scores how related two fields of study are: 1.0 for equal
// names, the curated table value when present (either direction), 0.7 when
// one name contains the other, 0.2 otherwise.
func FieldSimilarity(resumeField, requiredField string) float64 {
	if resumeField == requiredField {
		return 1.0
	}
	if related, ok := relatedFields[requiredField]; ok {
		if score, ok := related[resumeField]; ok {
			return score
		}
	}
	if related, ok := relatedFields[resumeField]; ok {
		if score, ok := related[requiredField]; ok {
			return score
		}
	}
	if strings.Contains(resumeField, requiredField) || strings.Contains(requiredField, resumeField) {
		return containmentSimilarity
	}
	return defaultFieldSimilarity
}

// degreeClassifiers map degree-text fragments to canonical levels. Checked in
// this order, first hit wins per entry.
var degreeClassifiers = []struct {
	level     types.DegreeLevel
	fragments []string
}{
	{types.DegreeBachelor, []string{"bachelor", " bs ", " ba ", "b.s", "b.a"}},
	{types.DegreeMaster, []string{"master", " ms ", " ma ", "m.s", "m.a", "mba"}},
	{types.DegreeDoctorate, []string{"phd", "ph.d", "doctor"}},
	{types.DegreeAssociate, []string{"associate", "a.a", "a.s"}},
	{types.DegreeHighSchool, []string{"high school", "ged"}},
}

// degreesFromEntries classifies each entry's degree text into a canonical
// level, de-duplicated in first-seen order.
func degreesFromEntries(entries []types.EducationEntry) []types.DegreeLevel {
	degrees := []types.DegreeLevel{}
	seen := map[types.DegreeLevel]bool{}
	for _, entry := range entries {
		padded := " " + strings.ToLower(entry.Degree) + " "
		for _, classifier := range degreeClassifiers {
			if !containsAnyFragment(padded, classifier.fragments) {
				continue
			}
			if !seen[classifier.level] {
				seen[classifier.level] = true
				degrees = append(degrees, classifier.level)
			}
			break
		}
	}
	return degrees
}

var fieldInDegree = regexp.MustCompile(`(?i)in\s+([A-Za-z\s]+)`)

// fieldsFromEntries collects fields of study from the entries, picking up
// "... in X" phrases embedded in degree text as well.
func fieldsFromEntries(entries []types.EducationEntry) []string {
	fields := []string{}
	seen := map[string]bool{}
	add := func(field string) {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" || seen[field] {
			return
		}
		seen[field] = true
		fields = append(fields, field)
	}
	for _, entry := range entries {
		add(entry.Field)
		if m := fieldInDegree.FindStringSubmatch(entry.Degree); m != nil {
			add(m[1])
		}
	}
	return fields
}

func educationDetails(requiredDegrees, matchedDegrees []types.DegreeLevel, requiredFields, matchedFields []string) string {
	parts := []string{}
	if len(requiredDegrees) > 0 {
		parts = append(parts, fmt.Sprintf("Required degree(s): %s. Matched: %s",
			joinDegrees(requiredDegrees), orNone(joinDegrees(matchedDegrees))))
	}
	if len(requiredFields) > 0 {
		parts = append(parts, fmt.Sprintf("Required field(s): %s. Matched: %s",
			strings.Join(requiredFields, ", "), orNone(strings.Join(matchedFields, ", "))))
	}
	if len(parts) == 0 {
		return "Education requirements are not specific enough to evaluate."
	}
	return strings.Join(parts, " ")
}

func joinDegrees(degrees []types.DegreeLevel) string {
	names := make([]string, len(degrees))
	for i, degree := range degrees {
		names[i] = string(degree)
	}
	return strings.Join(names, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func containsAnyFragment(text string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(text, fragment) {
			return true
		}
	}
	return false
}
