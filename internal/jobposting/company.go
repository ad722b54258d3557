package jobposting

import (
	"net/url"
	"strings"

	"github.com/jonathan/cold-outreach/internal/fetch"
	"github.com/jonathan/cold-outreach/internal/types"
)

// CompanyFromURL derives a company name from the source URL's domain.
// Known job boards map to their canonical brand name; otherwise the first
// domain label is title-cased.
func CompanyFromURL(sourceURL string) string {
	if platform := fetch.DetectPlatform(sourceURL); platform != fetch.PlatformUnknown {
		return platform.Brand()
	}

	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Host == "" {
		return types.CompanyUnknown
	}

	domain := strings.ToLower(parsed.Host)
	domain = strings.TrimPrefix(domain, "www.")
	domain = strings.TrimSuffix(domain, ".com")
	domain = strings.TrimSuffix(domain, ".org")

	label, _, _ := strings.Cut(domain, ".")
	if label == "" {
		return types.CompanyUnknown
	}

	return strings.ToUpper(label[:1]) + label[1:]
}
