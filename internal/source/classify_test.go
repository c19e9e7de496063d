package source

import (
	"testing"

	"github.com/osintlab/namesake/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		url      string
		expected model.SourceType
	}{
		{"https://www.linkedin.com/in/jane-doe", model.SourceLinkedIn},
		{"https://github.com/janedoe", model.SourceGitHub},
		{"https://www.youtube.com/watch?v=abc", model.SourceYouTube},
		{"https://youtu.be/abc", model.SourceYouTube},
		{"https://about.me/janedoe", model.SourceAboutMe},
		{"https://x.com/janedoe", model.SourceXTwitter},
		{"https://twitter.com/janedoe", model.SourceXTwitter},
		{"https://techcrunch.com/2024/01/01/acme-funding", model.SourceNews},
		{"https://example.com/team", model.SourceWebsite},
		{"://bad", model.SourceOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.url); got != tt.expected {
			t.Errorf("Classify(%q) = %q, expected %q", tt.url, got, tt.expected)
		}
	}
}

func TestHighTrust(t *testing.T) {
	for _, trusted := range []model.SourceType{model.SourceLinkedIn, model.SourceGitHub, model.SourceNews} {
		if !HighTrust(trusted) {
			t.Errorf("Expected %q to be high trust", trusted)
		}
	}
	for _, other := range []model.SourceType{model.SourceWebsite, model.SourceXTwitter, model.SourceOther} {
		if HighTrust(other) {
			t.Errorf("Expected %q not to be high trust", other)
		}
	}
}

func TestClassifyDomain(t *testing.T) {
	tests := []struct {
		domain   string
		hint     string
		expected model.SourceType
	}{
		{"www.linkedin.com", "", model.SourceLinkedIn},
		{"github.com", "", model.SourceGitHub},
		{"reuters.com", "", model.SourceMajorNews},
		{"blog.janedoe.dev", "", model.SourcePersonalBlog},
		{"medium.com", "", model.SourcePersonalBlog},
		{"acme.com", "Acme Corp", model.SourceOther},
		{"acmecorp.com", "Acme Corp", model.SourceCompanyWebsite},
		{"example.com", "", model.SourceOther},
	}
	for _, tt := range tests {
		if got := ClassifyDomain(tt.domain, tt.hint); got != tt.expected {
			t.Errorf("ClassifyDomain(%q, %q) = %q, expected %q", tt.domain, tt.hint, got, tt.expected)
		}
	}
}

func TestTrustWeight_UnknownFallsBack(t *testing.T) {
	if got := TrustWeight(model.SourceType("mystery")); got != TrustWeights[model.SourceOther] {
		t.Errorf("Expected other-weight fallback, got %v", got)
	}
	if got := SourceWeight(model.SourceType("mystery")); got != SourceWeights[model.SourceOther] {
		t.Errorf("Expected other-weight fallback, got %v", got)
	}
}
