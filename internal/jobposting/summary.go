package jobposting

import (
	"fmt"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// maxSummarySkills caps the number of skills shown in a one-line summary.
const maxSummarySkills = 5

// Summary produces a one-line human-readable summary of a job posting.
func Summary(posting *types.JobPosting) string {
	var parts []string

	if posting.Title != "" {
		parts = append(parts, fmt.Sprintf("Position: %s", posting.Title))
	}
	if posting.Company != "" {
		parts = append(parts, fmt.Sprintf("Company: %s", posting.Company))
	}
	if posting.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %s", posting.Location))
	}
	if posting.ExperienceLevel != "" {
		parts = append(parts, fmt.Sprintf("Experience: %s", posting.ExperienceLevel))
	}
	if posting.EmploymentType != "" {
		parts = append(parts, fmt.Sprintf("Type: %s", posting.EmploymentType))
	}
	if len(posting.Skills) > 0 {
		skills := posting.Skills
		if len(skills) > maxSummarySkills {
			skills = skills[:maxSummarySkills]
		}
		parts = append(parts, fmt.Sprintf("Skills: %s", strings.Join(skills, ", ")))
	}

	return strings.Join(parts, " | ")
}
