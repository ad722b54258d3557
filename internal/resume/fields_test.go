package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cold-outreach/internal/types"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "Capitalized full name on first line",
			lines: []string{"John Doe", "Software Engineer"},
			want:  "John Doe",
		},
		{
			name:  "Name appears within the first five lines",
			lines: []string{"RESUME", "Jane Smith", "jane@example.com"},
			want:  "Jane Smith",
		},
		{
			name:  "Capitalized word plus space fallback",
			lines: []string{"Maria de la Cruz"},
			want:  "Maria de la Cruz",
		},
		{
			name:  "Too-long lines are skipped",
			lines: []string{"Seasoned engineering professional with over a decade of experience building"},
			want:  types.NameNotFound,
		},
		{
			name:  "No candidate",
			lines: []string{"resume", "curriculum vitae"},
			want:  types.NameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.lines))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane.doe+jobs@example.co.uk",
		extractEmail("Reach me at jane.doe+jobs@example.co.uk or by phone"))
	assert.Equal(t, types.EmailNotFound, extractEmail("no address here"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"US dashed", "Call 555-123-4567 anytime", "555-123-4567"},
		{"US dotted", "555.123.4567", "555.123.4567"},
		{"Digit-grouped", "1381-2345-6789", "1381-2345-6789"},
		{"International", "+44-20-7946-0958", "+44-20-7946-0958"},
		{"None", "no number", types.PhoneNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPhone(tt.text))
		})
	}
}

func TestExtractLinkedIn(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/in/jdoe",
		extractLinkedIn("Profile: https://www.linkedin.com/in/jdoe"))
	assert.Equal(t, "http://linkedin.com/in/jane-smith",
		extractLinkedIn("see http://linkedin.com/in/jane-smith for details"))
	assert.Equal(t, types.LinkedInNotFound, extractLinkedIn("no profile"))
}

func TestExtractSummary(t *testing.T) {
	t.Run("Collects lines after the header", func(t *testing.T) {
		lines := []string{
			"Professional Summary",
			"Backend engineer with eight years of experience.",
			"Focused on reliability and distributed systems.",
		}
		got := extractSummary(lines)
		assert.Contains(t, got, "eight years")
		assert.Contains(t, got, "distributed systems")
	})

	t.Run("Stops at the first short line", func(t *testing.T) {
		lines := []string{
			"Objective",
			"Seeking a senior platform role at a product company.",
			"skills",
			"This line must not be collected into the summary.",
		}
		got := extractSummary(lines)
		assert.Contains(t, got, "senior platform role")
		assert.NotContains(t, got, "must not be collected")
	})

	t.Run("No header", func(t *testing.T) {
		assert.Equal(t, types.SummaryNotFound, extractSummary([]string{"John Doe", "Engineer"}))
	})
}
