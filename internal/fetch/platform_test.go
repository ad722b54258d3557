package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{name: "LinkedIn", url: "https://www.linkedin.com/jobs/view/123", want: PlatformLinkedIn},
		{name: "Indeed", url: "https://www.indeed.com/viewjob?jk=abc", want: PlatformIndeed},
		{name: "Glassdoor", url: "https://www.glassdoor.com/job-listing/xyz", want: PlatformGlassdoor},
		{name: "Regional subdomain", url: "https://de.indeed.com/viewjob?jk=abc", want: PlatformIndeed},
		{name: "Company careers page", url: "https://careers.initech.com/jobs/7", want: PlatformUnknown},
		{name: "Empty", url: "", want: PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformBrand(t *testing.T) {
	assert.Equal(t, "LinkedIn", PlatformLinkedIn.Brand())
	assert.Equal(t, "Indeed", PlatformIndeed.Brand())
	assert.Equal(t, "Glassdoor", PlatformGlassdoor.Brand())
	assert.Equal(t, "", PlatformUnknown.Brand())
}
