package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/osintlab/namesake/internal/model"
)

// intelligenceSummary renders the fixed one-paragraph summary for an
// intelligence report. The wording depends only on resolution status,
// candidate presence and the assembled evidence.
func intelligenceSummary(name string, resolved bool, candidates []model.Candidate, sources []model.IntelligenceSource) string {
	if !resolved {
		if len(candidates) == 0 {
			return fmt.Sprintf("Unable to reliably resolve %s. Additional qualifiers are required before crawling and aggregation can be trusted.", name)
		}
		return fmt.Sprintf("Partial match for %s (best candidate confidence %.2f), but multiple close profiles remain. Clarification is required.", name, candidates[0].Confidence)
	}
	if len(sources) == 0 {
		return fmt.Sprintf("Identity for %s appears resolved, but no source pages could be fetched.", name)
	}

	strongest := sources
	if len(strongest) > 5 {
		strongest = strongest[:5]
	}
	parts := make([]string, 0, len(strongest))
	for _, s := range strongest {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", s.Source, s.Confidence))
	}
	return fmt.Sprintf("Identity resolved for %s. Aggregated evidence from %d sources. Strongest sources: %s",
		name, len(sources), strings.Join(parts, ", "))
}

// resolutionSummary builds the aggregated summary for attribute resolution.
// The deterministic seed joins the strongest sources' role/company pairs;
// when a generative provider is available it rewrites the seed, and any
// provider failure falls back to the templated sentence.
func (e *Engine) resolutionSummary(ctx context.Context, sources []model.ResolvedSource, ambiguous bool, question string) string {
	if ambiguous {
		return "Identity is ambiguous across discovered sources. " + question
	}
	if len(sources) == 0 {
		return "No reliable public sources were found to build a summary."
	}

	top := sources
	if len(top) > 4 {
		top = top[:4]
	}
	parts := make([]string, 0, len(top))
	for _, s := range top {
		role := "professional"
		if s.Extracted.Designation != nil && *s.Extracted.Designation != "" {
			role = *s.Extracted.Designation
		}
		company := "unknown company"
		if s.Extracted.Company != nil && *s.Extracted.Company != "" {
			company = *s.Extracted.Company
		}
		parts = append(parts, fmt.Sprintf("%s at %s", role, company))
	}
	seed := strings.Join(parts, "; ")

	if e.provider != nil {
		polished, err := e.provider.PolishSummary(ctx, seed)
		if err == nil && strings.TrimSpace(polished) != "" {
			return strings.TrimSpace(polished)
		}
	}
	return "Resolved profile using multi-source evidence: " + seed + "."
}
