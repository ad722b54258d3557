package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinPattern = regexp.MustCompile(`https?://(?:www\.)?linkedin\.com/in/[a-zA-Z0-9-]+`)

	// Phone patterns tried in order: US dashed, CN digit-grouped, then
	// international +-prefixed. The first pattern with any match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\b\d{4}[-.]?\d{4}[-.]?\d{4}\b`),
		regexp.MustCompile(`\+\d{1,3}[-.]?\d{1,4}[-.]?\d{1,4}[-.]?\d{1,4}\b`),
	}

	fullNamePattern  = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+`)
	firstWordPattern = regexp.MustCompile(`^[A-Z][a-z]+`)
)

// summaryKeywords mark a line as the start of a personal summary block.
var summaryKeywords = []string{"summary", "objective", "profile", "about"}

// Limits for summary collection: lines scanned after the header and the
// minimum content length per collected line.
const (
	maxNameLines      = 5
	maxSummaryLines   = 4
	minSummaryLineLen = 10
)

// extractName scans the first few lines for a capitalized full-name pattern.
func extractName(lines []string) string {
	limit := min(len(lines), maxNameLines)
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(line) >= 50 {
			continue
		}
		if fullNamePattern.MatchString(line) {
			return line
		}
		if firstWordPattern.MatchString(line) && strings.Contains(line, " ") {
			return line
		}
	}
	return types.NameNotFound
}

// extractEmail returns the first email address in the text.
func extractEmail(text string) string {
	if email := emailPattern.FindString(text); email != "" {
		return email
	}
	return types.EmailNotFound
}

// extractPhone tries each phone pattern in order and returns the first match
// of the first pattern that matches at all.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			return phone
		}
	}
	return types.PhoneNotFound
}

// extractLinkedIn returns the first LinkedIn profile URL in the text.
func extractLinkedIn(text string) string {
	if url := linkedinPattern.FindString(text); url != "" {
		return url
	}
	return types.LinkedInNotFound
}

// extractSummary finds the first summary/objective header line and collects
// up to the next few substantial lines as the summary body, stopping at the
// first short line.
func extractSummary(lines []string) string {
	for i, line := range lines {
		if !containsSummaryKeyword(line) {
			continue
		}

		var collected []string
		for j := i + 1; j < len(lines) && j <= i+maxSummaryLines; j++ {
			candidate := strings.TrimSpace(lines[j])
			if candidate == "" || len(candidate) <= minSummaryLineLen {
				break
			}
			collected = append(collected, candidate)
		}
		if len(collected) > 0 {
			return strings.Join(collected, " ")
		}
	}
	return types.SummaryNotFound
}

func containsSummaryKeyword(line string) bool {
	lineLower := strings.ToLower(line)
	for _, keyword := range summaryKeywords {
		if strings.Contains(lineLower, keyword) {
			return true
		}
	}
	return false
}
