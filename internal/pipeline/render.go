package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osintlab/namesake/internal/model"
)

// Renderer writes report payloads as JSON and prints console summaries.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderJSON writes any report payload to path as indented JSON. An empty
// path writes to stdout instead.
func (r *Renderer) RenderJSON(report any, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if r.verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", path)
	}
	return nil
}

// RenderIntelligenceSummary prints the human-readable digest of an
// intelligence report to stderr.
func (r *Renderer) RenderIntelligenceSummary(report *model.IntelligenceReport) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Status:  %s\n", report.Status)
	if report.Query != "" {
		fmt.Fprintf(os.Stderr, "Query:   %s\n", report.Query)
	}
	fmt.Fprintf(os.Stderr, "Summary: %s\n", report.Summary)

	if len(report.Candidates) > 0 {
		fmt.Fprintf(os.Stderr, "\nCandidates:\n")
		for _, c := range report.Candidates {
			fmt.Fprintf(os.Stderr, "  %.2f  %s\n", c.Confidence, c.Label)
		}
	}
	if len(report.Sources) > 0 {
		fmt.Fprintf(os.Stderr, "\nSources:\n")
		for _, s := range report.Sources {
			fmt.Fprintf(os.Stderr, "  %.2f  [%s] %s\n", s.Confidence, s.Source, s.URL)
		}
	}
	if len(report.ClarificationQuestions) > 0 {
		fmt.Fprintf(os.Stderr, "\nClarification needed:\n")
		for _, q := range report.ClarificationQuestions {
			fmt.Fprintf(os.Stderr, "  - %s\n", q)
		}
	}
	fmt.Fprintf(os.Stderr, "\n")
}

// RenderResolutionSummary prints the human-readable digest of a resolution
// report to stderr.
func (r *Renderer) RenderResolutionSummary(report *model.ResolutionReport) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Identity:   %s\n", identityLine(report.ResolvedIdentity))
	fmt.Fprintf(os.Stderr, "Confidence: %.2f\n", report.ResolvedIdentity.Confidence)
	fmt.Fprintf(os.Stderr, "Ambiguous:  %v\n", report.AmbiguityFlag)
	fmt.Fprintf(os.Stderr, "Summary:    %s\n", report.AggregatedSummary)

	if len(report.Sources) > 0 {
		fmt.Fprintf(os.Stderr, "\nSources:\n")
		for _, s := range report.Sources {
			fmt.Fprintf(os.Stderr, "  %.2f  [%s] %s\n", s.Confidence, s.Type, s.URL)
		}
	}
	if report.ClarificationQuestion != "" {
		fmt.Fprintf(os.Stderr, "\nClarification needed:\n  - %s\n", report.ClarificationQuestion)
	}
	fmt.Fprintf(os.Stderr, "\n")
}

func identityLine(id model.ResolvedIdentity) string {
	field := func(p *string) string {
		if p == nil || *p == "" {
			return "?"
		}
		return *p
	}
	return fmt.Sprintf("%s | %s | %s | %s",
		field(id.Name), field(id.Company), field(id.Designation), field(id.Location))
}
