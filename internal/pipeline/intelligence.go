package pipeline

import (
	"context"
	"sort"
	"strings"

	"github.com/osintlab/namesake/internal/cluster"
	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/score"
	"github.com/osintlab/namesake/internal/source"
	"github.com/osintlab/namesake/internal/textutil"
)

const (
	maxCandidates = 5
	clusterWindow = 30
)

// Intelligence runs the broad resolution pipeline: query fan-out, hit
// scoring, clustering and the disambiguation decision, then either a
// clarification payload or crawled evidence with a summary. The returned
// report is always well-formed; only context cancellation surfaces as an
// error.
func (e *Engine) Intelligence(ctx context.Context, in model.IntelligenceInput) (*model.IntelligenceReport, error) {
	name := textutil.NormalizeWhitespace(in.Name)
	linkedinURL := strings.TrimSpace(in.LinkedInURL)
	if name == "" && linkedinURL != "" {
		name = textutil.NameFromLinkedIn(linkedinURL)
	}

	qualifiers := make([]string, 0, len(in.Qualifiers))
	for _, q := range in.Qualifiers {
		if q = textutil.NormalizeWhitespace(q); q != "" {
			qualifiers = append(qualifiers, q)
		}
	}

	if name == "" && linkedinURL == "" {
		return &model.IntelligenceReport{
			Status:                 model.StatusNeedsClarification,
			ClarificationQuestions: []string{"Please provide at least a name or a LinkedIn profile URL."},
			Candidates:             []model.Candidate{},
			Sources:                []model.IntelligenceSource{},
			Summary:                "Insufficient input.",
		}, nil
	}

	maxSources := maxSourcesOrDefault(in.MaxSources)
	base := textutil.NormalizeWhitespace(name + " " + strings.Join(qualifiers, " "))

	// The report echoes the strongest identifier given, not the search base.
	queryEcho := linkedinURL
	if queryEcho == "" {
		queryEcho = name
	}

	queries := e.intelligenceQueries(ctx, name, linkedinURL, base)
	results := e.searcher.Dispatch(ctx, queries)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hits := e.scoreResults(results, name, qualifiers, linkedinURL)

	window := hits
	if len(window) > clusterWindow {
		window = window[:clusterWindow]
	}
	candidates := cluster.Candidates(window, name)
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	report := &model.IntelligenceReport{
		Query:                  queryEcho,
		ClarificationQuestions: []string{},
		Candidates:             candidates,
		Sources:                []model.IntelligenceSource{},
	}

	if !e.decide(candidates, linkedinURL) {
		report.Status = model.StatusNeedsClarification
		report.ClarificationQuestions = clarificationQuestions(name, qualifiers, candidates)
		for _, hit := range topHits(hits, min(10, maxSources)) {
			report.Sources = append(report.Sources, model.IntelligenceSource{
				Source:     hit.Source,
				URL:        hit.URL,
				Title:      hit.Title,
				Snippet:    hit.Snippet,
				Confidence: hit.Relevance,
			})
		}
		report.Summary = intelligenceSummary(name, false, candidates, nil)
		return report, nil
	}

	report.Status = model.StatusResolved
	report.Disambiguated = true

	crawl := topHits(hits, min(clusterWindow, 3*maxSources))
	urls := make([]string, len(crawl))
	for i, hit := range crawl {
		urls[i] = hit.URL
	}
	texts := e.fetchTexts(ctx, urls, e.config.HTTP.MaxPageChars)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, hit := range crawl {
		if texts[i] == "" {
			continue
		}
		report.Sources = append(report.Sources, model.IntelligenceSource{
			Source:     hit.Source,
			URL:        hit.URL,
			Title:      hit.Title,
			Snippet:    hit.Snippet,
			Text:       texts[i],
			Confidence: score.SourceConfidence(hit.Relevance, hit.Source),
		})
		if len(report.Sources) == maxSources {
			break
		}
	}
	sort.SliceStable(report.Sources, func(i, j int) bool {
		return report.Sources[i].Confidence > report.Sources[j].Confidence
	})

	// Confidence alone settled a bare name; the report still carries the
	// standing ask for a stronger anchor.
	if linkedinURL == "" && len(qualifiers) == 0 {
		report.ClarificationQuestions = []string{"If possible, share the LinkedIn URL to remove ambiguity."}
	}

	report.Summary = intelligenceSummary(name, true, candidates, report.Sources)
	return report, nil
}

// scoreResults scores raw results against the input identity, discarding
// non-positive hits and collapsing duplicate URLs onto the higher relevance.
// The returned slice is sorted by relevance descending.
func (e *Engine) scoreResults(results []model.RawResult, name string, qualifiers []string, linkedinURL string) []model.SearchHit {
	nameTokens := textutil.NameTokens(name)

	best := make(map[string]model.SearchHit)
	var order []string
	for _, r := range results {
		relevance := score.Hit(score.HitInput{
			URL:         r.URL,
			Title:       r.Title,
			Snippet:     r.Snippet,
			NameTokens:  nameTokens,
			Qualifiers:  qualifiers,
			LinkedInURL: linkedinURL,
		})
		if relevance <= 0 {
			continue
		}
		hit := model.SearchHit{
			URL:       r.URL,
			Title:     r.Title,
			Snippet:   r.Snippet,
			Source:    source.Classify(r.URL),
			Relevance: relevance,
		}
		if existing, seen := best[r.URL]; !seen {
			best[r.URL] = hit
			order = append(order, r.URL)
		} else if relevance > existing.Relevance {
			best[r.URL] = hit
		}
	}

	hits := make([]model.SearchHit, 0, len(order))
	for _, u := range order {
		hits = append(hits, best[u])
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Relevance > hits[j].Relevance
	})
	return hits
}

func topHits(hits []model.SearchHit, n int) []model.SearchHit {
	if len(hits) > n {
		return hits[:n]
	}
	return hits
}
