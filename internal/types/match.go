package types

// SkillMatchResult holds the outcome of matching job skills against résumé skills.
// MatchedSkills preserves job-skill iteration order; MatchPercentage is in
// [0,100] rounded to two decimals and is 0 exactly when the job skill list is empty.
type SkillMatchResult struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage float64  `json:"match_percentage"`
}
