package composer

import (
	"fmt"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// Truncation limits for prompt context blocks.
const (
	maxDescriptionContext  = 500
	maxRequirementsContext = 300
)

// styleGuides maps each email style to the instruction injected into the
// body prompt. Unknown styles fall back to professional.
var styleGuides = map[types.EmailStyle]string{
	types.StyleProfessional: "Use formal, professional language. Lead with competence and concrete achievements.",
	types.StyleCasual:       "Use a friendly, relaxed tone. Show personality and cultural fit without slang.",
	types.StyleEnthusiastic: "Use energetic language that shows genuine excitement about the company and the role.",
}

// StyleGuide returns the prompt instruction for a style.
func StyleGuide(style types.EmailStyle) string {
	if guide, ok := styleGuides[style]; ok {
		return guide
	}
	return styleGuides[types.StyleProfessional]
}

// FormatJobContent renders a job posting as a plain-text block suitable for
// an LLM prompt. Empty fields are omitted.
func FormatJobContent(job *types.JobPosting) string {
	var parts []string

	if job.Title != "" {
		parts = append(parts, fmt.Sprintf("Job Title: %s", job.Title))
	}
	if job.Company != "" {
		parts = append(parts, fmt.Sprintf("Company: %s", job.Company))
	}
	if job.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %s", job.Location))
	}
	if job.Description != "" {
		parts = append(parts, fmt.Sprintf("Job Description: %s", truncate(job.Description, maxDescriptionContext)))
	}
	if job.Requirements != "" {
		parts = append(parts, fmt.Sprintf("Requirements: %s", truncate(job.Requirements, maxRequirementsContext)))
	}
	if job.Responsibilities != "" {
		parts = append(parts, fmt.Sprintf("Responsibilities: %s", job.Responsibilities))
	}
	if len(job.Skills) > 0 {
		parts = append(parts, fmt.Sprintf("Required Skills: %s", strings.Join(job.Skills, ", ")))
	}
	if job.ExperienceLevel != "" {
		parts = append(parts, fmt.Sprintf("Experience Level: %s", job.ExperienceLevel))
	}
	if job.EmploymentType != "" {
		parts = append(parts, fmt.Sprintf("Employment Type: %s", job.EmploymentType))
	}

	return strings.Join(parts, "\n\n")
}

// FormatResumeContent renders a parsed resume as a plain-text block suitable
// for an LLM prompt. Structured entries are flattened one per line.
func FormatResumeContent(r *types.Resume) string {
	var parts []string

	if r.Name != "" {
		parts = append(parts, fmt.Sprintf("Candidate Name: %s", r.Name))
	}
	if r.Summary != "" {
		parts = append(parts, fmt.Sprintf("Professional Summary: %s", r.Summary))
	}
	if len(r.Skills) > 0 {
		parts = append(parts, fmt.Sprintf("Skills: %s", strings.Join(r.Skills, ", ")))
	}

	if len(r.Experience) > 0 {
		parts = append(parts, "Work Experience:")
		for _, exp := range r.Experience {
			var fields []string
			if exp.Title != "" {
				fields = append(fields, fmt.Sprintf("Title: %s", exp.Title))
			}
			if exp.Company != "" {
				fields = append(fields, fmt.Sprintf("Company: %s", exp.Company))
			}
			if exp.Period != "" {
				fields = append(fields, fmt.Sprintf("Period: %s", exp.Period))
			}
			if exp.Description != "" {
				fields = append(fields, fmt.Sprintf("Description: %s", exp.Description))
			}
			parts = append(parts, strings.Join(fields, " - "))
		}
	}

	if len(r.Education) > 0 {
		parts = append(parts, "Education:")
		for _, edu := range r.Education {
			var fields []string
			if edu.Institution != "" {
				fields = append(fields, fmt.Sprintf("Institution: %s", edu.Institution))
			}
			if edu.Degree != "" {
				fields = append(fields, fmt.Sprintf("Degree: %s", edu.Degree))
			}
			if edu.Year != "" {
				fields = append(fields, fmt.Sprintf("Year: %s", edu.Year))
			}
			parts = append(parts, strings.Join(fields, " - "))
		}
	}

	if len(r.Projects) > 0 {
		parts = append(parts, "Projects:")
		for _, proj := range r.Projects {
			var fields []string
			if proj.Name != "" {
				fields = append(fields, fmt.Sprintf("Name: %s", proj.Name))
			}
			if proj.Description != "" {
				fields = append(fields, fmt.Sprintf("Description: %s", proj.Description))
			}
			if proj.Repository != "" {
				fields = append(fields, fmt.Sprintf("Repository: %s", proj.Repository))
			}
			parts = append(parts, strings.Join(fields, " - "))
		}
	}

	return strings.Join(parts, "\n\n")
}

// FormatMatchContext renders the skill match and ranked experience as a
// prompt block.
func FormatMatchContext(match types.SkillMatchResult, relevant []types.ExperienceEntry) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Skill Match: %.2f%%", match.MatchPercentage))
	if len(match.MatchedSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Matched Skills: %s", strings.Join(match.MatchedSkills, ", ")))
	}
	if len(match.MissingSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Missing Skills: %s", strings.Join(match.MissingSkills, ", ")))
	}
	if len(relevant) > 0 {
		parts = append(parts, fmt.Sprintf("Relevant Experience: %d positions", len(relevant)))
		for _, exp := range relevant {
			parts = append(parts, fmt.Sprintf("- %s (%s)", exp.Title, exp.Period))
		}
	}

	return strings.Join(parts, "\n")
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
