package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

// Suggestions derives improvement advice from the three sub-analyses, in
// priority order: missing skills, experience gap, unmet degree requirement.
// When fewer than two specific suggestions come out, generic advice pads the
// list so a report is never empty-handed.
func Suggestions(profile *types.CandidateProfile, skill types.SkillAnalysis, experience types.ExperienceAnalysis, education types.EducationAnalysis) []string {
	suggestions := []string{}

	if len(skill.MissingSkills) > 0 {
		if len(skill.MissingSkills) <= 3 {
			suggestions = append(suggestions,
				fmt.Sprintf("Add missing skills: %s", strings.Join(skill.MissingSkills, ", ")))
		} else {
			if len(skill.PriorityMissing) > 0 {
				suggestions = append(suggestions,
					fmt.Sprintf("Focus on adding these priority skills: %s", strings.Join(firstN(skill.PriorityMissing, 3), ", ")))
			} else {
				suggestions = append(suggestions,
					fmt.Sprintf("Add key missing skills: %s", strings.Join(firstN(skill.MissingSkills, 3), ", ")))
			}
			suggestions = append(suggestions,
				fmt.Sprintf("Work on developing %d missing skills identified in the job description", len(skill.MissingSkills)))
		}
	}

	if experience.YearsRequired != nil && experience.YearsMatched != nil &&
		*experience.YearsRequired > 0 && *experience.YearsMatched > 0 &&
		*experience.YearsMatched < float64(*experience.YearsRequired) {
		gap := float64(*experience.YearsRequired) - *experience.YearsMatched
		if gap <= 2 {
			suggestions = append(suggestions,
				fmt.Sprintf("Highlight relevant projects or additional responsibilities to compensate for the %g year experience gap", gap))
		} else {
			suggestions = append(suggestions,
				"Consider roles requiring less experience or emphasize rapid skill acquisition and relevant achievements")
		}
	}

	if !education.DegreeMatched && len(education.DegreeRequired) > 0 {
		names := make([]string, len(education.DegreeRequired))
		for i, degree := range education.DegreeRequired {
			names[i] = string(degree)
		}
		suggestions = append(suggestions,
			fmt.Sprintf("The job requires %s. Consider highlighting equivalent experience or continuing education", strings.Join(names, ", ")))
	}

	if len(suggestions) < 2 {
		if profile.RawText != "" && len(strings.Fields(profile.RawText)) < 300 {
			suggestions = append(suggestions,
				"Your resume appears brief. Consider adding more detail about your achievements and responsibilities")
		}
		if len(skill.MatchedSkills) > 0 {
			suggestions = append(suggestions,
				"Optimize keyword placement by ensuring skills appear in both your summary and work experience sections")
		}
		suggestions = append(suggestions,
			"Quantify your achievements with metrics and specific results to stand out from other candidates")
	}

	return suggestions
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
