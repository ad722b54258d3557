package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// Relevance score contributions and result cap.
const (
	titleHitScore       = 2
	descriptionHitScore = 1
	maxRelevantEntries  = 3
)

// RankRelevantExperience scores each experience entry against the job
// requirements text: +2 when the title contains any requirements token,
// +1 when the description does. Zero-score entries are dropped; survivors
// are stably sorted by score descending and capped at three.
func RankRelevantExperience(requirementsText string, entries []types.ExperienceEntry) []types.ExperienceEntry {
	if len(entries) == 0 {
		return nil
	}

	tokens := strings.Fields(strings.ToLower(requirementsText))
	if len(tokens) == 0 {
		return nil
	}

	relevant := make([]types.ExperienceEntry, 0, len(entries))
	for _, entry := range entries {
		score := 0
		if containsAnyToken(strings.ToLower(entry.Title), tokens) {
			score += titleHitScore
		}
		if containsAnyToken(strings.ToLower(entry.Description), tokens) {
			score += descriptionHitScore
		}
		if score == 0 {
			continue
		}
		entry.RelevanceScore = score
		relevant = append(relevant, entry)
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].RelevanceScore > relevant[j].RelevanceScore
	})

	if len(relevant) > maxRelevantEntries {
		relevant = relevant[:maxRelevantEntries]
	}
	return relevant
}

// containsAnyToken reports whether text contains any of the tokens as a substring.
func containsAnyToken(text string, tokens []string) bool {
	if text == "" {
		return false
	}
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
