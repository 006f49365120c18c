package structuring

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ExtractEmail returns the first email address in the line, or "".
func ExtractEmail(line string) string {
	return emailPattern.FindString(line)
}

// ExtractPhone returns the first run of at least ten digits and separators, or "".
func ExtractPhone(line string) string {
	return strings.TrimSpace(phonePattern.FindString(line))
}

// ExtractLinkedIn returns a "linkedin.com/in/<handle>" fragment, or "".
func ExtractLinkedIn(line string) string {
	return linkedInPattern.FindString(line)
}

// ExtractGitHub returns a "github.com/<handle>" fragment, or "".
func ExtractGitHub(line string) string {
	return gitHubPattern.FindString(line)
}

// ExtractPortfolio returns the first http(s) or www link that is not a
// LinkedIn or GitHub profile, or "".
func ExtractPortfolio(line string) string {
	for _, u := range urlPattern.FindAllString(line, -1) {
		lower := strings.ToLower(u)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return strings.TrimRight(u, ".")
	}
	return ""
}

// ExtractLocation returns the leading "City, Region" text of the line, or "".
func ExtractLocation(line string) string {
	return strings.TrimSpace(locationPattern.FindString(line))
}

// applyContactFields runs every contact extractor against the line and reports
// whether any field was set. Each extractor is independent; later lines
// overwrite earlier matches for the same field.
func applyContactFields(info *types.PersonalInfo, line string) bool {
	found := false
	set := func(dst *string, value string) {
		if value != "" {
			*dst = value
			found = true
		}
	}
	set(&info.Email, ExtractEmail(line))
	set(&info.Phone, ExtractPhone(line))
	set(&info.LinkedIn, ExtractLinkedIn(line))
	set(&info.GitHub, ExtractGitHub(line))
	set(&info.Portfolio, ExtractPortfolio(line))
	set(&info.Location, ExtractLocation(line))
	return found
}
