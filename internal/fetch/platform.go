// Package fetch - platform.go provides job board platform detection from URLs.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformLinkedIn is the LinkedIn job board
	PlatformLinkedIn Platform = "linkedin"
	// PlatformIndeed is the Indeed job board
	PlatformIndeed Platform = "indeed"
	// PlatformGlassdoor is the Glassdoor job board
	PlatformGlassdoor Platform = "glassdoor"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "linkedin.com") {
		return PlatformLinkedIn
	}
	if strings.Contains(host, "indeed.com") {
		return PlatformIndeed
	}
	if strings.Contains(host, "glassdoor.com") {
		return PlatformGlassdoor
	}

	return PlatformUnknown
}

// Brand returns the canonical brand name for a known platform, or empty
// string for unknown platforms.
func (p Platform) Brand() string {
	switch p {
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformIndeed:
		return "Indeed"
	case PlatformGlassdoor:
		return "Glassdoor"
	default:
		return ""
	}
}
