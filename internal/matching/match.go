// Package matching computes skill overlap and experience relevance between a
// job posting and a candidate résumé.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// MatchSkills matches job skills against résumé skills. A job skill counts as
// matched when it is a substring of, or contains, any résumé skill after
// case-insensitive trimming. Matched skills preserve job-skill order; the
// percentage is 0 exactly when the job skill list is empty.
func MatchSkills(jobSkills, resumeSkills []string) types.SkillMatchResult {
	if len(jobSkills) == 0 {
		return types.SkillMatchResult{
			MatchedSkills:   []string{},
			MissingSkills:   []string{},
			MatchPercentage: 0.0,
		}
	}

	jobNormalized := normalizeSkills(jobSkills)
	resumeNormalized := normalizeSkills(resumeSkills)

	matched := make([]string, 0, len(jobNormalized))
	matchedSet := make(map[string]bool, len(jobNormalized))
	for _, jobSkill := range jobNormalized {
		for _, resumeSkill := range resumeNormalized {
			if strings.Contains(resumeSkill, jobSkill) || strings.Contains(jobSkill, resumeSkill) {
				matched = append(matched, jobSkill)
				matchedSet[jobSkill] = true
				break
			}
		}
	}

	missing := make([]string, 0, len(jobNormalized)-len(matched))
	for _, jobSkill := range jobNormalized {
		if !matchedSet[jobSkill] {
			missing = append(missing, jobSkill)
		}
	}

	percentage := float64(len(matched)) / float64(len(jobNormalized)) * 100

	return types.SkillMatchResult{
		MatchedSkills:   matched,
		MissingSkills:   missing,
		MatchPercentage: round2(percentage),
	}
}

// normalizeSkills lowercases and trims every skill, preserving order.
func normalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(skill)))
	}
	return normalized
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
