package resume

import (
	"fmt"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// maxSummarySkills caps the number of skills shown in a one-line summary.
const maxSummarySkills = 5

// Summary produces a one-line human-readable summary of a parsed résumé.
func Summary(r *types.Resume) string {
	var parts []string

	if r.Name != "" {
		parts = append(parts, fmt.Sprintf("Name: %s", r.Name))
	}
	if r.Email != "" {
		parts = append(parts, fmt.Sprintf("Email: %s", r.Email))
	}
	if len(r.Skills) > 0 {
		skills := r.Skills
		if len(skills) > maxSummarySkills {
			skills = skills[:maxSummarySkills]
		}
		parts = append(parts, fmt.Sprintf("Skills: %s", strings.Join(skills, ", ")))
	}
	if len(r.Experience) > 0 {
		parts = append(parts, fmt.Sprintf("Experience: %d positions", len(r.Experience)))
	}
	if len(r.Education) > 0 {
		parts = append(parts, fmt.Sprintf("Education: %d entries", len(r.Education)))
	}

	return strings.Join(parts, " | ")
}
