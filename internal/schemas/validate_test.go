package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cold-outreach/internal/types"
)

func TestValidate_JobPosting(t *testing.T) {
	job := types.JobPosting{
		SourceURL:        "https://example.com/jobs/1",
		Title:            "Backend Engineer",
		Company:          "Initech",
		Location:         "Remote",
		Description:      "Build services",
		Requirements:     "Go experience",
		Responsibilities: "Ship features",
		Skills:           []string{"python"},
		ExperienceLevel:  types.LevelSenior,
		EmploymentType:   types.EmploymentFullTime,
	}
	data, err := json.Marshal(job)
	require.NoError(t, err)

	assert.NoError(t, Validate(JobPosting, data))
}

func TestValidate_JobPostingNilSkills(t *testing.T) {
	job := types.JobPosting{
		SourceURL:       "https://example.com/jobs/1",
		Title:           "Backend Engineer",
		Company:         "Initech",
		ExperienceLevel: types.LevelNotSpecified,
		EmploymentType:  types.EmploymentNotSpecified,
	}
	data, err := json.Marshal(job)
	require.NoError(t, err)

	assert.NoError(t, Validate(JobPosting, data))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	err := Validate(EffectivenessReport, []byte(`{"strengths": ["direct"]}`))

	var target *ValidationError
	require.ErrorAs(t, err, &target)
	assert.NotEmpty(t, target.Errors)
}

func TestValidate_OutOfRangeValue(t *testing.T) {
	doc := `{"score": 11, "strengths": [], "weaknesses": [], "suggestions": []}`
	err := Validate(EffectivenessReport, []byte(doc))

	var target *ValidationError
	require.ErrorAs(t, err, &target)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nonexistent.schema.json", []byte(`{}`))

	var target *SchemaLoadError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "nonexistent.schema.json", target.Name)
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(EffectivenessReport, []byte("not json"))
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	doc := `{"score": 7, "strengths": ["direct"], "weaknesses": [], "suggestions": []}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	assert.NoError(t, ValidateFile(EffectivenessReport, path))
	assert.Error(t, ValidateFile(EffectivenessReport, filepath.Join(dir, "missing.json")))
}

func TestList(t *testing.T) {
	names := List()
	assert.Contains(t, names, JobPosting)
	assert.Contains(t, names, Resume)
	assert.Contains(t, names, SkillMatch)
	assert.Contains(t, names, EmailDraft)
	assert.Contains(t, names, EffectivenessReport)
}
