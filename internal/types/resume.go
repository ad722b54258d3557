package types

// Sentinel values for résumé fields that the heuristics could not locate.
const (
	NameNotFound     = "Name not found"
	EmailNotFound    = "Email not found"
	PhoneNotFound    = "Phone not found"
	LinkedInNotFound = "LinkedIn not found"
	SummaryNotFound  = "Summary not found"
)

// Resume represents a parsed candidate résumé. Immutable once constructed;
// absent fields carry sentinel strings, entry slices may be empty but never nil-checked semantics.
type Resume struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	LinkedInURL string            `json:"linkedin_url"`
	Summary     string            `json:"summary"`
	Skills      []string          `json:"skills"`
	Education   []EducationEntry  `json:"education"`
	Experience  []ExperienceEntry `json:"experience"`
	Projects    []ProjectEntry    `json:"projects"`
	RawText     string            `json:"raw_text"`
}

// EducationEntry is one education record accumulated while scanning an
// education section. A new entry starts on an institution-name line.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// ExperienceEntry is one work-history record. A new entry starts on a
// year-range line. RelevanceScore is populated only by the match engine.
type ExperienceEntry struct {
	Title          string `json:"title,omitempty"`
	Company        string `json:"company,omitempty"`
	Period         string `json:"period,omitempty"`
	Description    string `json:"description,omitempty"`
	RelevanceScore int    `json:"relevance_score,omitempty"`
}

// ProjectEntry is one project record. A new entry starts on a line matching
// a project-noun pattern.
type ProjectEntry struct {
	Name        string `json:"name,omitempty"`
	Repository  string `json:"repository,omitempty"`
	Description string `json:"description,omitempty"`
}
