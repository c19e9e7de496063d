package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/osintlab/namesake/internal/llm"
	"github.com/osintlab/namesake/internal/textutil"
)

// intelligenceQueries assembles the query set for an intelligence call:
// generative proposals when a provider is available, the base query plus
// the deterministic fallback otherwise, always followed by the direct
// profile URL.
func (e *Engine) intelligenceQueries(ctx context.Context, name, linkedinURL, base string) []string {
	var queries []string
	if e.provider != nil {
		proposed, err := e.provider.GenerateQueries(ctx, llm.QueryRequest{
			Name:        name,
			LinkedInURL: linkedinURL,
		})
		if err == nil {
			queries = proposed
		}
	}
	if len(queries) == 0 {
		queries = append([]string{base}, llm.FallbackQueries(llm.QueryRequest{
			Name:        name,
			LinkedInURL: linkedinURL,
		})...)
	}
	if linkedinURL != "" {
		queries = append(queries, linkedinURL)
	}
	return dedupeQueries(queries)
}

// attributeQueries builds the quoted query templates for attribute
// resolution. The second return value flags the high-ambiguity case of a
// name with no company qualifier.
func attributeQueries(name, company, designation, location, linkedinURL string) ([]string, bool) {
	name = textutil.NormalizeWhitespace(name)
	company = textutil.NormalizeWhitespace(company)
	designation = textutil.NormalizeWhitespace(designation)
	location = textutil.NormalizeWhitespace(location)

	ambiguityRisk := false
	var queries []string

	if linkedinURL != "" {
		queries = append(queries, linkedinURL)
	}

	if name != "" {
		if company != "" {
			queries = append(queries,
				fmt.Sprintf("%q %q", name, company),
				fmt.Sprintf("%q %q interview", name, company),
				fmt.Sprintf("%q %q site:linkedin.com", name, company),
				fmt.Sprintf("%q %q site:github.com", name, company),
				fmt.Sprintf("%q %q site:youtube.com", name, company),
				fmt.Sprintf("%q %q news", name, company),
			)
		} else {
			ambiguityRisk = true
			queries = append(queries,
				fmt.Sprintf("%q linkedin", name),
				fmt.Sprintf("%q profile", name),
				fmt.Sprintf("%q github", name),
				fmt.Sprintf("%q interview", name),
			)
		}

		var qualifiers []string
		for _, q := range []string{company, designation, location} {
			if q != "" {
				qualifiers = append(qualifiers, q)
			}
		}
		if len(qualifiers) > 0 {
			queries = append(queries, fmt.Sprintf("%q %s", name, strings.Join(qualifiers, " ")))
		}
	}

	return dedupeQueries(queries), ambiguityRisk
}

// dedupeQueries normalizes whitespace and removes blanks and duplicates,
// preserving first-seen order.
func dedupeQueries(queries []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range queries {
		q = textutil.NormalizeWhitespace(q)
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	return out
}
