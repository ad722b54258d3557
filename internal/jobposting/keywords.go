package jobposting

import (
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

// levelGroup is one bracket of experience-level keywords. Groups are scanned
// in order; the first group with any hit wins.
type levelGroup struct {
	level    types.ExperienceLevel
	keywords []string
}

var experienceLevels = []levelGroup{
	{types.LevelEntry, []string{"entry level", "junior", "0-1 years", "1 year"}},
	{types.LevelMid, []string{"mid level", "intermediate", "2-4 years", "3 years", "4 years"}},
	{types.LevelSenior, []string{"senior", "lead", "5+ years", "5 years", "6 years", "7 years"}},
	{types.LevelExpert, []string{"expert", "principal", "architect", "10+ years"}},
}

// typeGroup is one employment-type keyword group, scanned in order.
type typeGroup struct {
	employment types.EmploymentType
	keywords   []string
}

var employmentTypes = []typeGroup{
	{types.EmploymentFullTime, []string{"full time", "full-time", "fulltime"}},
	{types.EmploymentPartTime, []string{"part time", "part-time", "parttime"}},
	{types.EmploymentContract, []string{"contract", "contractor"}},
	{types.EmploymentInternship, []string{"intern", "internship"}},
	{types.EmploymentRemote, []string{"remote", "work from home"}},
}

// DetectExperienceLevel scans text for experience-level keywords,
// case-insensitive. Returns LevelNotSpecified when no group matches.
func DetectExperienceLevel(text string) types.ExperienceLevel {
	textLower := strings.ToLower(text)
	for _, group := range experienceLevels {
		for _, keyword := range group.keywords {
			if strings.Contains(textLower, keyword) {
				return group.level
			}
		}
	}
	return types.LevelNotSpecified
}

// DetectEmploymentType scans text for employment-type keywords,
// case-insensitive. Returns EmploymentNotSpecified when no group matches.
func DetectEmploymentType(text string) types.EmploymentType {
	textLower := strings.ToLower(text)
	for _, group := range employmentTypes {
		for _, keyword := range group.keywords {
			if strings.Contains(textLower, keyword) {
				return group.employment
			}
		}
	}
	return types.EmploymentNotSpecified
}
