// Package types defines the structured records exchanged between the
// extractors and the match scorer. All records are plain value objects
// created fresh per call; nothing in this package carries state across calls.
package types

// ExperienceLevel is the coarse seniority classification derived from a job
// description.
type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "Entry Level"
	LevelMid    ExperienceLevel = "Mid Level"
	LevelSenior ExperienceLevel = "Senior Level"
	LevelExpert ExperienceLevel = "Expert Level"
)

// DegreeLevel is a canonical degree classification. The scoring hierarchy is
// Associate(1) < Bachelor(2) < Master(3) < Doctorate(4); DegreeHighSchool is
// recognized by extraction but carries no rank.
type DegreeLevel string

const (
	DegreeHighSchool DegreeLevel = "high school"
	DegreeAssociate  DegreeLevel = "associate"
	DegreeBachelor   DegreeLevel = "bachelor"
	DegreeMaster     DegreeLevel = "master"
	DegreeDoctorate  DegreeLevel = "doctorate"
)

// ExperienceRequirement captures the experience demands of a job description.
type ExperienceRequirement struct {
	MinYears    int             `json:"min_years"`
	MaxYears    *int            `json:"max_years,omitempty"`
	Level       ExperienceLevel `json:"level"`
	Description string          `json:"description"`
}

// EducationRequirement captures the education demands of a job description.
type EducationRequirement struct {
	Required    DegreeLevel `json:"required,omitempty"`
	Preferred   DegreeLevel `json:"preferred,omitempty"`
	Fields      []string    `json:"fields"`
	Description string      `json:"description"`
}

// Empty reports whether no educational demand was found at all.
func (e EducationRequirement) Empty() bool {
	return e.Required == "" && e.Preferred == "" && len(e.Fields) == 0
}

// JobRequirements is the structured form of a job description.
type JobRequirements struct {
	RawText          string                `json:"raw_text"`
	Title            string                `json:"title,omitempty"`
	Location         string                `json:"location,omitempty"`
	Skills           []string              `json:"skills"`
	PrioritySkills   []string              `json:"priority_skills"`
	Experience       ExperienceRequirement `json:"experience"`
	Education        EducationRequirement  `json:"education"`
	Responsibilities []string              `json:"responsibilities"`
}
