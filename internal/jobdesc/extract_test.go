package jobdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-rater/internal/types"
)

const sampleJob = `Job Title: Senior Backend Engineer
Location: Remote

We are looking for a Senior Backend Engineer with strong Python skills.

Requirements:
- 5+ years of software development experience
- Proficient in Python and SQL
- Experience with Docker and Kubernetes

Responsibilities:
- Design and build backend services in python
- Operate postgresql databases and redis caches
- Mentor engineers on the team

Education:
Bachelor degree in computer science.
`

func TestExtractFullJobDescription(t *testing.T) {
	req := New(nil).Extract(sampleJob)

	assert.Equal(t, "Senior Backend Engineer", req.Title)
	assert.Equal(t, "Remote", req.Location)
	assert.Equal(t,
		[]string{"python", "sql", "postgresql", "redis", "docker", "kubernetes"},
		req.Skills, "skills follow vocabulary declaration order")
	assert.Equal(t, 5, req.Experience.MinYears)
	assert.Equal(t, types.LevelSenior, req.Experience.Level)
	assert.Equal(t, types.DegreeBachelor, req.Education.Required)
	assert.Equal(t, []string{"computer science"}, req.Education.Fields)
	assert.Len(t, req.Responsibilities, 3)
}

func TestExtractEmptyInput(t *testing.T) {
	req := New(nil).Extract("  \n ")

	assert.Empty(t, req.Skills)
	assert.Empty(t, req.PrioritySkills)
	assert.Empty(t, req.Responsibilities)
	assert.True(t, req.Education.Empty())
}

func TestPrioritySkillRepeatedMention(t *testing.T) {
	req := New(nil).Extract(sampleJob)

	assert.Contains(t, req.PrioritySkills, "python", "a skill mentioned more than once is priority")
}

func TestPrioritySkillInRequirementsSection(t *testing.T) {
	req := New(nil).Extract(sampleJob)

	assert.Contains(t, req.PrioritySkills, "docker", "skills in the requirements section are priority")
	assert.Contains(t, req.PrioritySkills, "kubernetes")
	assert.NotContains(t, req.PrioritySkills, "postgresql", "skills only in responsibilities are not priority")
	assert.NotContains(t, req.PrioritySkills, "redis")
}

func TestPrioritySkillUpperCaseMention(t *testing.T) {
	req := New(nil).Extract("Great team.\n\nWe need PYTHON experts on staff.")

	assert.Contains(t, req.PrioritySkills, "python", "a fully upper-cased mention marks a skill priority")
}

func TestPrioritySkillEmphasisMarkers(t *testing.T) {
	req := New(nil).Extract("Join us.\n\nWe value *docker* skills above all.")

	assert.Contains(t, req.PrioritySkills, "docker")
}

func TestPrioritySkillIntensifierPhrase(t *testing.T) {
	req := New(nil).Extract("Team overview first.\n\nCandidates proficient in terraform are welcome.")

	assert.Contains(t, req.PrioritySkills, "terraform")
}

func TestPrioritySkillFirstParagraph(t *testing.T) {
	req := New(nil).Extract("This role centers on golang tooling and grafana dashboards.\n\nOther duties exist.")

	assert.Contains(t, req.PrioritySkills, "grafana", "first-paragraph skills are priority")
}

func TestPrioritySkillsPreserveFirstSeenOrder(t *testing.T) {
	req := New(nil).Extract(sampleJob)

	assert.Equal(t, []string{"python", "sql", "docker", "kubernetes"}, req.PrioritySkills)
}
