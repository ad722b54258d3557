package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

var (
	institutionPattern = regexp.MustCompile(`(?i)\b(University|College|School|Institute|Academy)\b`)
	// Short all-caps lines are treated as institution acronyms (MIT, UCLA).
	acronymPattern = regexp.MustCompile(`^[A-Z]{2,10}$`)
	yearPattern    = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	periodPattern  = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b.*\b(20\d{2}|19\d{2}|Present|Current)\b`)
	projectPattern = regexp.MustCompile(`(?i)\b(Project|App|System|Platform|Tool)\b`)
)

// titleKeywords mark a line as a job title inside an experience section.
var titleKeywords = []string{"engineer", "developer", "manager", "analyst", "specialist"}

// minDescriptionLen is the minimum line length for description accumulation.
const minDescriptionLen = 20

// ExtractEducation runs the education state machine over a section bucket.
// A new entry starts on an institution-name line; other lines fill untouched
// fields of the in-progress entry.
func ExtractEducation(lines []string) []types.EducationEntry {
	if len(lines) == 0 {
		return nil
	}

	var entries []types.EducationEntry
	var current types.EducationEntry

	flush := func() {
		if current != (types.EducationEntry{}) {
			entries = append(entries, current)
		}
		current = types.EducationEntry{}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lineLower := strings.ToLower(line)
		switch {
		case isInstitutionLine(line):
			if current.Institution != "" {
				flush()
			}
			current.Institution = line
		case strings.Contains(lineLower, "degree") ||
			strings.Contains(lineLower, "bachelor") ||
			strings.Contains(lineLower, "master"):
			if current.Degree == "" {
				current.Degree = line
			}
		case yearPattern.MatchString(line):
			if current.Year == "" {
				current.Year = line
			}
		case strings.Contains(lineLower, "gpa"):
			if current.GPA == "" {
				current.GPA = line
			}
		}
	}
	flush()

	return entries
}

// isInstitutionLine reports whether a line names an educational institution.
func isInstitutionLine(line string) bool {
	return institutionPattern.MatchString(line) || acronymPattern.MatchString(line)
}

// ExtractExperience runs the experience state machine over a section bucket.
// A year-range line fills the in-progress entry's period, or starts a new
// entry when the period is already taken.
func ExtractExperience(lines []string) []types.ExperienceEntry {
	if len(lines) == 0 {
		return nil
	}

	var entries []types.ExperienceEntry
	var current types.ExperienceEntry

	flush := func() {
		if current != (types.ExperienceEntry{}) {
			entries = append(entries, current)
		}
		current = types.ExperienceEntry{}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case periodPattern.MatchString(line):
			if current.Period != "" {
				flush()
			}
			current.Period = line
		case containsTitleKeyword(line):
			if current.Title == "" {
				current.Title = line
			}
		case strings.Contains(line, "@") || strings.Contains(line, "www."):
			if current.Company == "" {
				current.Company = line
			}
		case len(line) >= minDescriptionLen && !yearPattern.MatchString(line):
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += " " + line
			}
		}
	}
	flush()

	return entries
}

// containsTitleKeyword reports whether a line looks like a job title.
func containsTitleKeyword(line string) bool {
	lineLower := strings.ToLower(line)
	for _, keyword := range titleKeywords {
		if strings.Contains(lineLower, keyword) {
			return true
		}
	}
	return false
}

// ExtractProjects runs the project state machine over a section bucket.
// A project-noun line starts a new entry.
func ExtractProjects(lines []string) []types.ProjectEntry {
	if len(lines) == 0 {
		return nil
	}

	var entries []types.ProjectEntry
	var current types.ProjectEntry

	flush := func() {
		if current != (types.ProjectEntry{}) {
			entries = append(entries, current)
		}
		current = types.ProjectEntry{}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case projectPattern.MatchString(line):
			if current.Name != "" {
				flush()
			}
			current.Name = line
		case strings.Contains(line, "github.com") || strings.Contains(line, "gitlab.com"):
			if current.Repository == "" {
				current.Repository = line
			}
		case len(line) >= minDescriptionLen:
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += " " + line
			}
		}
	}
	flush()

	return entries
}
