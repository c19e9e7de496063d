package cluster

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/osintlab/namesake/internal/model"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		person   string
		snippet  string
		expected string
	}{
		{
			"linkedin profile slug",
			"https://www.linkedin.com/in/Jane-Doe-99",
			"Jane Doe", "",
			"linkedin:jane-doe-99",
		},
		{
			"github owner",
			"https://github.com/janedoe/dotfiles",
			"Jane Doe", "",
			"github:janedoe",
		},
		{
			"company hint from snippet",
			"https://example.com/team",
			"Jane Doe", "Jane Doe is an engineer at Acme Corp.",
			"name+company:jane doe:acme corp",
		},
		{
			"bare name fallback",
			"https://example.com/page",
			"Jane Doe", "no employer mentioned",
			"name:jane doe",
		},
		{
			"linkedin without profile path",
			"https://www.linkedin.com/company/acme",
			"Jane Doe", "",
			"name:jane doe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.url, tt.person, tt.snippet); got != tt.expected {
				t.Errorf("Key = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestCompanyHint(t *testing.T) {
	if got := CompanyHint("Engineer at Acme Corp, previously elsewhere."); got != "Acme Corp" {
		t.Errorf("Expected %q, got %q", "Acme Corp", got)
	}
	if got := CompanyHint("nothing useful here"); got != "" {
		t.Errorf("Expected empty hint, got %q", got)
	}
}

func TestCandidates_GroupingAndConfidence(t *testing.T) {
	hits := []model.SearchHit{
		{URL: "https://www.linkedin.com/in/jane-doe-99", Title: "Jane Doe - Acme", Snippet: "Engineer at Acme", Source: model.SourceLinkedIn, Relevance: 0.9},
		{URL: "https://github.com/janedoe", Title: "janedoe", Snippet: "code", Source: model.SourceGitHub, Relevance: 0.8},
		{URL: "https://www.linkedin.com/in/jane-doe-99?trk=x", Title: "Jane Doe", Snippet: "profile", Source: model.SourceLinkedIn, Relevance: 0.7},
	}

	candidates := Candidates(hits, "Jane Doe")
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}

	// Two LinkedIn hits share the slug key; confidence is their mean.
	first := candidates[0]
	if first.ClusterKey != "linkedin:jane-doe-99" {
		t.Errorf("Expected linkedin cluster first, got %q", first.ClusterKey)
	}
	if first.Confidence != 0.8 {
		t.Errorf("Expected mean confidence 0.8, got %v", first.Confidence)
	}
	if first.ProfileURL != "https://www.linkedin.com/in/jane-doe-99" {
		t.Errorf("Expected lead hit's profile URL, got %q", first.ProfileURL)
	}
	if first.CompanyHint != "Acme" {
		t.Errorf("Expected company hint from lead snippet, got %q", first.CompanyHint)
	}
	if len(first.Evidence) != 2 {
		t.Errorf("Expected 2 evidence snippets, got %d", len(first.Evidence))
	}

	if candidates[1].ClusterKey != "github:janedoe" {
		t.Errorf("Expected github cluster second, got %q", candidates[1].ClusterKey)
	}
}

func TestCandidates_Deterministic(t *testing.T) {
	hits := []model.SearchHit{
		{URL: "https://example.com/a", Title: "Jane Doe at Acme", Snippet: "at Acme", Relevance: 0.6},
		{URL: "https://example.com/b", Title: "Jane Doe at Globex", Snippet: "at Globex", Relevance: 0.6},
	}

	first := Candidates(hits, "Jane Doe")
	for i := 0; i < 5; i++ {
		again := Candidates(hits, "Jane Doe")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Expected identical candidate lists on re-run, got %v vs %v", first, again)
		}
	}

	// Tied confidence keeps the ranked-hit order, strongest lead first.
	if first[0].ClusterKey != "name+company:jane doe:acme" {
		t.Errorf("Expected the first-seen cluster ranked first on a tie, got %q", first[0].ClusterKey)
	}
}

func TestCandidates_TieKeepsRankedOrder(t *testing.T) {
	hits := []model.SearchHit{
		{URL: "https://www.linkedin.com/in/jane-doe-99", Title: "Jane Doe", Snippet: "profile", Source: model.SourceLinkedIn, Relevance: 0.8},
		{URL: "https://github.com/aadoe", Title: "aadoe", Snippet: "code", Source: model.SourceGitHub, Relevance: 0.8},
	}

	candidates := Candidates(hits, "Jane Doe")
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].ClusterKey != "linkedin:jane-doe-99" {
		t.Errorf("Expected the stronger-ranked lead first on equal confidence, got %q", candidates[0].ClusterKey)
	}
}

func TestCandidates_LabelTruncatesOnRunes(t *testing.T) {
	title := strings.Repeat("é", 130)
	hits := []model.SearchHit{
		{URL: "https://example.com/page", Title: title, Snippet: "", Relevance: 0.5},
	}

	candidates := Candidates(hits, "Jane Doe")
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	label := candidates[0].Label
	if !utf8.ValidString(label) {
		t.Error("Expected a valid UTF-8 label after truncation")
	}
	if got := utf8.RuneCountInString(label); got != 120 {
		t.Errorf("Expected 120 runes, got %d", got)
	}
}

func TestCandidates_Empty(t *testing.T) {
	if got := Candidates(nil, "Jane Doe"); len(got) != 0 {
		t.Errorf("Expected no candidates, got %d", len(got))
	}
}
