package types

// EducationEntry is one education record extracted from a candidate document.
type EducationEntry struct {
	Degree string `json:"degree"`
	Field  string `json:"field,omitempty"`
	Year   string `json:"year,omitempty"`
}

// ExperienceEntry is one employment record extracted from a candidate document.
type ExperienceEntry struct {
	Title     string  `json:"title"`
	Company   string  `json:"company,omitempty"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   string  `json:"end_date,omitempty"`
	Duration  string  `json:"duration,omitempty"`
	Years     float64 `json:"years"`
}

// CandidateProfile is the structured form of a candidate document.
type CandidateProfile struct {
	RawText    string            `json:"raw_text"`
	Name       string            `json:"name,omitempty"`
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
}
