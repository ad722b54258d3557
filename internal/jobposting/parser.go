// Package jobposting extracts structured job postings from raw page markup
// using prioritized selector cascades.
package jobposting

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/cold-outreach/internal/parsing"
	"github.com/jonathan/cold-outreach/internal/types"
)

// selectorRule is one candidate in a field cascade: a CSS selector plus the
// minimum normalized-text length for the candidate to qualify.
type selectorRule struct {
	selector string
	minLen   int
}

// Field cascades, ordered specific to generic. The first qualifying
// candidate wins.
var (
	titleRules = []selectorRule{
		{`h1[class*="title"]`, 3},
		{`h1[class*="job"]`, 3},
		{`h1[class*="position"]`, 3},
		{`.job-title`, 3},
		{`.position-title`, 3},
		{`h1`, 3},
	}

	companyRules = []selectorRule{
		{`[class*="company"]`, 2},
		{`[class*="employer"]`, 2},
		{`.company-name`, 2},
		{`.employer-name`, 2},
	}

	locationRules = []selectorRule{
		{`[class*="location"]`, 2},
		{`[class*="address"]`, 2},
		{`.job-location`, 2},
		{`.location`, 2},
	}

	descriptionRules = []selectorRule{
		{`[class*="description"]`, 50},
		{`[class*="summary"]`, 50},
		{`.job-description`, 50},
		{`.position-description`, 50},
		{`[id*="description"]`, 50},
	}

	requirementRules = []selectorRule{
		{`[class*="requirement"]`, 20},
		{`[class*="qualification"]`, 20},
		{`.job-requirements`, 20},
		{`.qualifications`, 20},
		{`[id*="requirement"]`, 20},
	}

	responsibilityRules = []selectorRule{
		{`[class*="responsibility"]`, 20},
		{`[class*="duty"]`, 20},
		{`.job-responsibilities`, 20},
		{`.responsibilities`, 20},
	}
)

// siteSuffix matches trailing site-name suffixes in page titles,
// e.g. " - Indeed" or " | acme.com Careers".
var siteSuffix = regexp.MustCompile(`\s*[-|]\s*(Indeed|LinkedIn|Glassdoor|.*\.com).*`)

// descriptionMaxLen caps the generic main-content fallback for descriptions.
const descriptionMaxLen = 1000

// Parse extracts a structured JobPosting from raw markup. Individual field
// heuristics never fail; absent fields carry sentinel strings. Only
// unparseable markup yields an error.
func Parse(markup string, sourceURL string) (*types.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, &ExtractionError{
			Message: "failed to parse markup",
			Cause:   err,
		}
	}

	posting := &types.JobPosting{
		Title:            extractTitle(doc),
		Company:          extractCompany(doc, sourceURL),
		Location:         applyCascade(doc, locationRules, types.LocationNotSpecified),
		Description:      extractDescription(doc),
		Requirements:     applyCascade(doc, requirementRules, types.RequirementsNotFound),
		Responsibilities: applyCascade(doc, responsibilityRules, types.ResponsibilitiesNotFound),
		SourceURL:        sourceURL,
	}

	levelText := posting.Description + " " + posting.Requirements
	posting.Skills = parsing.ExtractSkills(levelText)
	posting.ExperienceLevel = DetectExperienceLevel(levelText)
	posting.EmploymentType = DetectEmploymentType(posting.Description)

	return posting, nil
}

// applyCascade evaluates the rules in order and returns the first candidate
// whose normalized text passes its length gate, or the sentinel.
func applyCascade(doc *goquery.Document, rules []selectorRule, sentinel string) string {
	for _, rule := range rules {
		sel := doc.Find(rule.selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := parsing.Normalize(sel.Text())
		if len(text) > rule.minLen {
			return text
		}
	}
	return sentinel
}

// extractTitle runs the heading cascade, then falls back to the page <title>
// with known site-name suffixes stripped.
func extractTitle(doc *goquery.Document) string {
	for _, rule := range titleRules {
		sel := doc.Find(rule.selector).First()
		if sel.Length() == 0 {
			continue
		}
		title := parsing.Normalize(sel.Text())
		if len(title) > rule.minLen {
			return title
		}
	}

	if titleTag := doc.Find("title").First(); titleTag.Length() > 0 {
		// Strip the suffix before normalizing; Normalize removes the
		// "|" separator the suffix pattern keys on.
		title := siteSuffix.ReplaceAllString(titleTag.Text(), "")
		title = parsing.Normalize(title)
		if title != "" {
			return title
		}
	}

	return types.TitleNotFound
}

// extractCompany runs the company cascade, then derives a brand name from
// the source URL domain.
func extractCompany(doc *goquery.Document, sourceURL string) string {
	if company := applyCascade(doc, companyRules, ""); company != "" {
		return company
	}
	return CompanyFromURL(sourceURL)
}

// extractDescription runs the description cascade, then falls back to the
// main content area truncated to a sane length.
func extractDescription(doc *goquery.Document) string {
	if description := applyCascade(doc, descriptionRules, ""); description != "" {
		return description
	}

	for _, selector := range []string{"main", "article", "div.content"} {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		description := parsing.Normalize(sel.Text())
		if len(description) > 100 {
			if len(description) > descriptionMaxLen {
				description = description[:descriptionMaxLen]
			}
			return description
		}
	}

	return types.DescriptionNotFound
}
