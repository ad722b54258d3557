package parsing

import "strings"

// skillVocabulary is the fixed set of technology and process terms recognized
// by ExtractSkills. It is read-only configuration loaded once at process start.
var skillVocabulary = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js",
	"sql", "mongodb", "postgresql", "mysql", "aws", "azure", "gcp",
	"docker", "kubernetes", "git", "machine learning", "ai", "deep learning",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "matplotlib",
	"html", "css", "bootstrap", "jquery", "django", "flask", "fastapi",
	"spring", "hibernate", "maven", "gradle", "jenkins", "ci/cd",
	"agile", "scrum", "jira", "confluence", "rest api", "graphql",
	"microservices", "serverless", "lambda", "s3", "ec2", "rds",
}

// SkillVocabulary returns a copy of the fixed skill vocabulary.
func SkillVocabulary() []string {
	vocab := make([]string, len(skillVocabulary))
	copy(vocab, skillVocabulary)
	return vocab
}

// ExtractSkills returns every vocabulary term that occurs as a substring of
// the lowercased input. The result is deduplicated; callers needing a stable
// presentation order should sort independently.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	textLower := strings.ToLower(text)
	seen := make(map[string]bool, len(skillVocabulary))
	found := make([]string, 0)
	for _, skill := range skillVocabulary {
		if seen[skill] {
			continue
		}
		if strings.Contains(textLower, skill) {
			seen[skill] = true
			found = append(found, skill)
		}
	}
	return found
}
