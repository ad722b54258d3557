package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cold-outreach/internal/types"
)

const sampleResumeText = `Jane Smith
555-123-4567

Summary
Builds reliable backend platforms in Go and Python.

Experience
Senior Engineer at Initech
2019 - Present
Shipped streaming ingestion pipelines.

Education
MIT
Bachelor of Science in Computer Science, 2014
`

func TestParse_FullResume(t *testing.T) {
	r, err := Parse(sampleResumeText)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", r.Name)
	assert.Equal(t, "555-123-4567", r.Phone)
	assert.Equal(t, "Builds reliable backend platforms in Go and Python.", r.Summary)
	assert.Equal(t, []string{"python"}, r.Skills)

	require.Len(t, r.Experience, 1)
	// Title lines are kept whole; there is no employer split heuristic.
	assert.Equal(t, "Senior Engineer at Initech", r.Experience[0].Title)
	assert.Empty(t, r.Experience[0].Company)
	assert.Equal(t, "2019 - Present", r.Experience[0].Period)
	assert.Equal(t, "Shipped streaming ingestion pipelines.", r.Experience[0].Description)

	require.Len(t, r.Education, 1)
	assert.Equal(t, "MIT", r.Education[0].Institution)
	assert.Contains(t, r.Education[0].Degree, "Bachelor of Science")

	assert.NotEmpty(t, r.RawText)
}

// Normalization strips characters like @ and / before field extraction runs,
// so email and profile URLs degrade to sentinels on the full parse path.
func TestParse_StrippedContactCharactersYieldSentinels(t *testing.T) {
	text := "Jane Smith\njane.smith@example.com\nhttps://www.linkedin.com/in/janesmith\n"

	r, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, types.EmailNotFound, r.Email)
	assert.Equal(t, types.LinkedInNotFound, r.LinkedInURL)
}

func TestParse_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "Empty string", text: ""},
		{name: "Whitespace only", text: "  \n\t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			var target *ExtractionError
			assert.ErrorAs(t, err, &target)
		})
	}
}

func TestParse_MissingFieldsCarrySentinels(t *testing.T) {
	r, err := Parse("some unstructured text without recognizable anchors")
	require.NoError(t, err)

	assert.Equal(t, types.NameNotFound, r.Name)
	assert.Equal(t, types.EmailNotFound, r.Email)
	assert.Equal(t, types.PhoneNotFound, r.Phone)
	assert.Equal(t, types.SummaryNotFound, r.Summary)
	assert.Empty(t, r.Education)
	assert.Empty(t, r.Experience)
}
