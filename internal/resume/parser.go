// Package resume parses free-form résumé text into structured records using
// keyword-driven section segmentation and line-pattern heuristics.
package resume

import (
	"strings"

	"github.com/jonathan/cold-outreach/internal/parsing"
	"github.com/jonathan/cold-outreach/internal/types"
)

// Parse turns raw résumé text into a structured Resume. Field heuristics are
// best-effort: absent fields carry sentinel strings and empty sections yield
// empty entry lists. Only completely empty input is an error.
func Parse(rawText string) (*types.Resume, error) {
	normalized := parsing.NormalizeLines(rawText)
	if normalized == "" {
		return nil, &ExtractionError{Message: "document contains no text"}
	}

	lines := strings.Split(normalized, "\n")
	sections := SegmentSections(normalized)

	return &types.Resume{
		Name:        extractName(lines),
		Email:       extractEmail(normalized),
		Phone:       extractPhone(normalized),
		LinkedInURL: extractLinkedIn(normalized),
		Summary:     extractSummary(lines),
		Skills:      parsing.ExtractSkills(normalized),
		Education:   ExtractEducation(sections[SectionEducation]),
		Experience:  ExtractExperience(sections[SectionExperience]),
		Projects:    ExtractProjects(sections[SectionProjects]),
		RawText:     normalized,
	}, nil
}

// ParseDocument validates, decodes and parses an uploaded résumé document in
// one call.
func ParseDocument(filename string, data []byte) (*types.Resume, error) {
	if err := ValidateUpload(filename, int64(len(data))); err != nil {
		return nil, err
	}

	text, err := ExtractText(filename, data)
	if err != nil {
		return nil, err
	}

	return Parse(text)
}
