// Package parsing provides the text normalization and skill extraction
// primitives shared by the job posting and resume parsers.
package parsing

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Keeps word characters, whitespace and basic punctuation; everything
	// else is stripped as non-semantic.
	disallowedChars = regexp.MustCompile(`[^\w\s.,!?:;\-()]`)
)

// Normalize collapses any run of whitespace to a single space, removes
// characters outside the allowed set, and trims the result. It is pure and
// total: empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = disallowedChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// NormalizeLines normalizes text while preserving line structure, so that
// line-oriented scanners (section segmentation, entry state machines) still
// see one logical record per line. Line endings are unified to LF, each line
// is normalized independently, and blank lines are dropped.
func NormalizeLines(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = Normalize(line)
		if line == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}
