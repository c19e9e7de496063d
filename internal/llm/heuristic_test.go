package llm

import (
	"strings"
	"testing"
)

func TestHeuristicExtract(t *testing.T) {
	attrs := HeuristicExtract(ExtractRequest{
		Title:   "Jane Doe",
		Snippet: "Engineer at Acme, based in Berlin",
	})

	if attrs.Company == nil || *attrs.Company != "Acme" {
		t.Errorf("Expected company Acme, got %v", attrs.Company)
	}
	if attrs.Location == nil || *attrs.Location != "Berlin" {
		t.Errorf("Expected location Berlin, got %v", attrs.Location)
	}
	if attrs.Name != nil || attrs.Designation != nil || attrs.Education != nil {
		t.Error("Expected heuristics to leave name, designation and education nil")
	}
	if attrs.ShortBio == nil || !strings.Contains(*attrs.ShortBio, "Jane Doe") {
		t.Errorf("Expected a short bio, got %v", attrs.ShortBio)
	}
}

func TestHeuristicExtract_BioCap(t *testing.T) {
	attrs := HeuristicExtract(ExtractRequest{
		PageText: strings.Repeat("word ", 200),
	})
	if attrs.ShortBio == nil {
		t.Fatal("Expected a short bio")
	}
	if len(*attrs.ShortBio) > 280 {
		t.Errorf("Expected bio capped at 280 chars, got %d", len(*attrs.ShortBio))
	}
}

func TestFallbackQueries(t *testing.T) {
	queries := FallbackQueries(QueryRequest{
		Name:        "Jane Doe",
		Company:     "Acme",
		LinkedInURL: "https://linkedin.com/in/jane-doe",
	})
	expected := []string{"Jane Doe", "Jane Doe Acme", "https://linkedin.com/in/jane-doe"}
	if len(queries) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, queries)
	}
	for i := range expected {
		if queries[i] != expected[i] {
			t.Errorf("Expected %q at %d, got %q", expected[i], i, queries[i])
		}
	}

	if got := FallbackQueries(QueryRequest{}); len(got) != 0 {
		t.Errorf("Expected no queries for empty request, got %v", got)
	}
}
