// Package types provides type definitions for structured data used throughout the cold-outreach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentinel values used when a heuristic cannot locate a field.
// They are valid-but-empty signals, never an error condition.
const (
	TitleNotFound            = "Job title not found"
	CompanyUnknown           = "Unknown Company"
	LocationNotSpecified     = "Location not specified"
	DescriptionNotFound      = "Job description not found"
	RequirementsNotFound     = "Job requirements not found"
	ResponsibilitiesNotFound = "Job responsibilities not found"
)

// ExperienceLevel is the seniority bracket inferred from a job posting.
type ExperienceLevel string

// Experience level constants, ordered from most junior to most senior.
const (
	LevelEntry        ExperienceLevel = "Entry"
	LevelMid          ExperienceLevel = "Mid"
	LevelSenior       ExperienceLevel = "Senior"
	LevelExpert       ExperienceLevel = "Expert"
	LevelNotSpecified ExperienceLevel = "Not specified"
)

// EmploymentType is the engagement model inferred from a job posting.
type EmploymentType string

// Employment type constants.
const (
	EmploymentFullTime     EmploymentType = "Full-time"
	EmploymentPartTime     EmploymentType = "Part-time"
	EmploymentContract     EmploymentType = "Contract"
	EmploymentInternship   EmploymentType = "Internship"
	EmploymentRemote       EmploymentType = "Remote"
	EmploymentNotSpecified EmploymentType = "Not specified"
)

// JobPosting represents a structured job posting extracted from raw page markup.
// It is immutable once constructed; absent fields carry sentinel strings.
type JobPosting struct {
	Title            string          `json:"title"`
	Company          string          `json:"company"`
	Location         string          `json:"location"`
	Description      string          `json:"description"`
	Requirements     string          `json:"requirements"`
	Responsibilities string          `json:"responsibilities"`
	Skills           []string        `json:"skills"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	EmploymentType   EmploymentType  `json:"employment_type"`
	SourceURL        string          `json:"source_url"`
}
