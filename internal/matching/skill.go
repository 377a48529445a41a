package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

// SkillMatch scores candidate skills against the job's skill list. A job
// skill counts as matched when it equals a candidate skill or is contained in
// one ("postgresql" covers a "sql" requirement). Priority skills earn a bonus
// weighted by their share of the full list, which lets full coverage of the
// emphasized skills saturate the score even when ordinary skills are missing.
func SkillMatch(resumeSkills, jobSkills, prioritySkills []string, cfg Config) types.SkillAnalysis {
	cfg = cfg.withDefaults()

	if len(jobSkills) == 0 {
		return types.SkillAnalysis{
			Score:           1.0,
			MatchedSkills:   []string{},
			MissingSkills:   []string{},
			PriorityMatched: []string{},
			PriorityMissing: []string{},
			MatchPercentage: 100,
			Details:         "No specific skills required in job description.",
		}
	}

	resumeLower := make([]string, len(resumeSkills))
	for i, skill := range resumeSkills {
		resumeLower[i] = strings.ToLower(skill)
	}

	matched := []string{}
	missing := []string{}
	for _, skill := range jobSkills {
		if coveredBy(strings.ToLower(skill), resumeLower) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	// Priority matching is exact only; substring coverage does not count.
	priorityMatched := []string{}
	priorityMissing := []string{}
	for _, skill := range prioritySkills {
		if containsString(resumeLower, strings.ToLower(skill)) {
			priorityMatched = append(priorityMatched, skill)
		} else {
			priorityMissing = append(priorityMissing, skill)
		}
	}

	total := len(jobSkills)
	matchPercentage := float64(len(matched)) / float64(total) * 100

	priorityScore := 0.0
	if len(prioritySkills) > 0 {
		priorityScore = float64(len(priorityMatched)) / float64(len(prioritySkills)) * cfg.PrioritySkillBonus
	}

	baseScore := float64(len(matched)) / float64(total)
	priorityWeight := float64(len(prioritySkills)) / float64(total)
	score := baseScore*(1-priorityWeight) + priorityScore*priorityWeight
	if score > 1.0 {
		score = 1.0
	}

	return types.SkillAnalysis{
		Score:           round2(score),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		PriorityMatched: priorityMatched,
		PriorityMissing: priorityMissing,
		MatchPercentage: round1(matchPercentage),
		Details:         fmt.Sprintf("Matched %d of %d required skills (%.1f%%).", len(matched), total, matchPercentage),
	}
}

// coveredBy reports whether the job skill equals, or is a substring of, any
// candidate skill.
func coveredBy(jobSkill string, resumeSkills []string) bool {
	for _, resumeSkill := range resumeSkills {
		if resumeSkill == jobSkill || strings.Contains(resumeSkill, jobSkill) {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
