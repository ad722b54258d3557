package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// ContextSummary builds a one-line summary of the job, the candidate and
// their skill overlap, used as grounding context for email generation.
func ContextSummary(job *types.JobPosting, r *types.Resume) string {
	var parts []string

	if job.Title != "" && job.Company != "" {
		parts = append(parts, fmt.Sprintf("Position: %s at %s", job.Title, job.Company))
	}
	if job.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %s", job.Location))
	}
	if job.ExperienceLevel != "" {
		parts = append(parts, fmt.Sprintf("Experience Level: %s", job.ExperienceLevel))
	}

	match := MatchSkills(job.Skills, r.Skills)
	if len(match.MatchedSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Matched Skills: %s", strings.Join(match.MatchedSkills, ", ")))
	}
	if match.MatchPercentage > 0 {
		parts = append(parts, fmt.Sprintf("Skill Match: %.2f%%", match.MatchPercentage))
	}

	if r.Name != "" {
		parts = append(parts, fmt.Sprintf("Candidate: %s", r.Name))
	}
	if len(r.Experience) > 0 {
		parts = append(parts, fmt.Sprintf("Work Experience: %d positions", len(r.Experience)))
	}

	return strings.Join(parts, " | ")
}
