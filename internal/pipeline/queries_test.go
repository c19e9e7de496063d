package pipeline

import (
	"context"
	"reflect"
	"testing"
)

func TestIntelligenceQueries_DeterministicFallback(t *testing.T) {
	engine := newTestEngine(&stubSearcher{}, &stubFetcher{})

	profileURL := "https://www.linkedin.com/in/jane-doe"
	queries := engine.intelligenceQueries(context.Background(), "Jane Doe", profileURL, "Jane Doe Acme Engineer")

	// No provider configured: the base query, the bare name, then the
	// profile URL, deduplicated.
	expected := []string{"Jane Doe Acme Engineer", "Jane Doe", profileURL}
	if !reflect.DeepEqual(queries, expected) {
		t.Errorf("Expected %v, got %v", expected, queries)
	}
}

func TestAttributeQueries_WithCompany(t *testing.T) {
	queries, risk := attributeQueries("Jane Doe", "Acme", "", "", "")
	if risk {
		t.Error("Expected no ambiguity risk with a company qualifier")
	}

	expected := []string{
		`"Jane Doe" "Acme"`,
		`"Jane Doe" "Acme" interview`,
		`"Jane Doe" "Acme" site:linkedin.com`,
		`"Jane Doe" "Acme" site:github.com`,
		`"Jane Doe" "Acme" site:youtube.com`,
		`"Jane Doe" "Acme" news`,
		`"Jane Doe" Acme`,
	}
	if !reflect.DeepEqual(queries, expected) {
		t.Errorf("Expected %v, got %v", expected, queries)
	}
}

func TestAttributeQueries_NameOnlyRisk(t *testing.T) {
	queries, risk := attributeQueries("Jane Doe", "", "", "", "")
	if !risk {
		t.Error("Expected ambiguity risk for name-only input")
	}

	expected := []string{
		`"Jane Doe" linkedin`,
		`"Jane Doe" profile`,
		`"Jane Doe" github`,
		`"Jane Doe" interview`,
	}
	if !reflect.DeepEqual(queries, expected) {
		t.Errorf("Expected %v, got %v", expected, queries)
	}
}

func TestAttributeQueries_LinkedInFirst(t *testing.T) {
	url := "https://www.linkedin.com/in/jane-doe"
	queries, _ := attributeQueries("Jane Doe", "Acme", "CTO", "Berlin", url)

	if queries[0] != url {
		t.Errorf("Expected the profile URL first, got %q", queries[0])
	}
	last := queries[len(queries)-1]
	if last != `"Jane Doe" Acme CTO Berlin` {
		t.Errorf("Expected joined qualifier query last, got %q", last)
	}
}

func TestDedupeQueries(t *testing.T) {
	got := dedupeQueries([]string{" a  b ", "a b", "", "c", "a b"})
	expected := []string{"a b", "c"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
