package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the kind of page a URL points at.
type Platform string

const (
	// PlatformLinkedInPost is a single LinkedIn post or activity page
	PlatformLinkedInPost Platform = "linkedin_post"
	// PlatformLinkedInProfile is a LinkedIn member profile
	PlatformLinkedInProfile Platform = "linkedin_profile"
	// PlatformUnknown is any other page
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	if !strings.HasSuffix(host, "linkedin.com") {
		return PlatformUnknown
	}

	path := strings.ToLower(parsed.Path)
	switch {
	case strings.HasPrefix(path, "/posts/"),
		strings.HasPrefix(path, "/feed/update/"),
		strings.HasPrefix(path, "/pulse/"):
		return PlatformLinkedInPost
	case strings.HasPrefix(path, "/in/"):
		return PlatformLinkedInProfile
	default:
		return PlatformUnknown
	}
}

// CleanLinkedInURL drops the query string and fragment, which carry tracking
// parameters that vary between shares of the same post.
func CleanLinkedInURL(urlStr string) string {
	urlStr = strings.TrimSpace(urlStr)
	if i := strings.IndexAny(urlStr, "?#"); i >= 0 {
		urlStr = urlStr[:i]
	}
	return urlStr
}

// PostSelectors returns the selectors tried in order for a post body.
func PostSelectors() []string {
	return []string{
		".feed-shared-update-v2__description",
		".update-components-text",
		"div.break-words",
		"[data-test-id='main-feed-activity-card__commentary']",
		".break-words span[dir='ltr']",
	}
}

// PlatformContentSelectors returns content selectors for a platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedInPost:
		return append(PostSelectors(), "article")
	case PlatformLinkedInProfile:
		return []string{
			".pv-about-section",
			"section.summary",
			"main",
		}
	default:
		return DefaultTextSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
		".social-share",
		".share-buttons",
	}

	switch platform {
	case PlatformLinkedInPost, PlatformLinkedInProfile:
		return append(common,
			".social-details-social-counts",
			".comments-comments-list",
			".join-form",
			".sign-in-modal",
			".contextual-sign-in-modal",
		)
	default:
		return common
	}
}
