package resume

import "strings"

// Section labels a résumé segment produced by keyword-triggered segmentation.
type Section string

// Recognized sections. SectionGeneral holds lines seen before the first
// recognized header and is not consumed by any typed extractor.
const (
	SectionGeneral    Section = "general"
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionContact    Section = "contact"
)

// sectionKeywords maps each labeled section to the header keywords that
// switch segmentation into it. Groups are checked in order.
var sectionKeywords = []struct {
	section  Section
	keywords []string
}{
	{SectionEducation, []string{"education", "academic", "degree", "university", "college", "school"}},
	{SectionExperience, []string{"experience", "work history", "employment", "career", "job"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies", "technologies"}},
	{SectionProjects, []string{"projects", "portfolio", "achievements", "accomplishments"}},
	{SectionContact, []string{"contact", "email", "phone", "address", "linkedin"}},
}

// SegmentSections scans lines in order and buckets them under the current
// section. A line switches the current section when any section keyword is a
// case-insensitive substring of it; header lines themselves are not added to
// any bucket. Lines before the first recognized header accumulate under the
// general bucket, which is kept only if the document never leaves it.
func SegmentSections(text string) map[Section][]string {
	sections := make(map[Section][]string)

	current := SectionGeneral
	var content []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if section, ok := matchSectionHeader(line); ok {
			if current != SectionGeneral {
				sections[current] = content
			}
			current = section
			content = nil
			continue
		}

		content = append(content, line)
	}

	if len(content) > 0 {
		sections[current] = content
	}

	return sections
}

// matchSectionHeader reports the first section whose keywords match the line.
func matchSectionHeader(line string) (Section, bool) {
	lineLower := strings.ToLower(line)
	for _, group := range sectionKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lineLower, keyword) {
				return group.section, true
			}
		}
	}
	return SectionGeneral, false
}
