package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.linkedin.com/posts/jane_go-activity-123", PlatformLinkedInPost},
		{"https://linkedin.com/feed/update/urn:li:activity:123/", PlatformLinkedInPost},
		{"https://www.linkedin.com/pulse/some-article-jane", PlatformLinkedInPost},
		{"https://www.linkedin.com/in/jane-doe/", PlatformLinkedInProfile},
		{"https://www.linkedin.com/jobs/view/1", PlatformUnknown},
		{"https://example.com/posts/1", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestCleanLinkedInURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://www.linkedin.com/posts/x-1?utm_source=share&utm_medium=member", "https://www.linkedin.com/posts/x-1"},
		{"  https://www.linkedin.com/posts/x-1#comments ", "https://www.linkedin.com/posts/x-1"},
		{"https://www.linkedin.com/posts/x-1", "https://www.linkedin.com/posts/x-1"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanLinkedInURL(tt.in))
	}
}

func TestPlatformSelectors(t *testing.T) {
	assert.Equal(t, ".feed-shared-update-v2__description", PostSelectors()[0])
	assert.Contains(t, PlatformContentSelectors(PlatformLinkedInPost), "article")
	assert.Equal(t, DefaultTextSelectors(), PlatformContentSelectors(PlatformUnknown))
	assert.Contains(t, PlatformNoiseSelectors(PlatformLinkedInPost), ".sign-in-modal")
	assert.NotContains(t, PlatformNoiseSelectors(PlatformUnknown), ".sign-in-modal")
}
