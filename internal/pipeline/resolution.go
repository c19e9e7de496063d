package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/osintlab/namesake/internal/llm"
	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/score"
	"github.com/osintlab/namesake/internal/source"
	"github.com/osintlab/namesake/internal/textutil"
)

// resolvePageChars caps per-page text fed to attribute extraction.
const resolvePageChars = 5000

// Resolve runs attribute-qualified resolution: quoted query templates,
// per-source attribute extraction and weighting, an ambiguity decision, and
// a per-field identity merge. The report never carries an error state; only
// context cancellation surfaces as an error.
func (e *Engine) Resolve(ctx context.Context, in model.ResolveInput) (*model.ResolutionReport, error) {
	name := textutil.NormalizeWhitespace(in.Name)
	company := textutil.NormalizeWhitespace(in.Company)
	designation := textutil.NormalizeWhitespace(in.Designation)
	location := textutil.NormalizeWhitespace(in.Location)
	linkedinURL := strings.TrimSpace(in.LinkedInURL)
	if name == "" && linkedinURL != "" {
		name = textutil.NameFromLinkedIn(linkedinURL)
	}

	if name == "" && linkedinURL == "" {
		return &model.ResolutionReport{
			AmbiguityFlag:         true,
			ClarificationQuestion: "Please provide at least a name or a LinkedIn profile URL.",
			Sources:               []model.ResolvedSource{},
			AggregatedSummary:     "Insufficient input.",
		}, nil
	}

	maxSources := maxSourcesOrDefault(in.MaxSources)
	queries, ambiguityRisk := attributeQueries(name, company, designation, location, linkedinURL)

	results := e.searcher.Dispatch(ctx, queries)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results = withDirectProfile(results, linkedinURL)
	if len(results) > 2*maxSources {
		results = results[:2*maxSources]
	}

	urls := make([]string, len(results))
	for i, r := range results {
		urls[i] = r.URL
	}
	texts := e.fetchTexts(ctx, urls, resolvePageChars)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	attrInput := score.AttributeInput{
		Name:        name,
		Company:     company,
		Designation: designation,
		Location:    location,
	}

	candidates := make([]attrCandidate, 0, len(results))
	for i, r := range results {
		extracted := e.extract(ctx, llm.ExtractRequest{
			Title:    r.Title,
			Snippet:  r.Snippet,
			URL:      r.URL,
			PageText: texts[i],
		})
		if extracted.Name == nil && name != "" {
			n := name
			extracted.Name = &n
		}

		domain := textutil.Domain(r.URL)
		sourceType := source.ClassifyDomain(domain, company)
		attrScore := score.AttributeMatch(attrInput, extracted)
		confidence := score.WeightedSourceConfidence(attrScore, sourceType)

		candidates = append(candidates, attrCandidate{
			source: model.ResolvedSource{
				URL:        r.URL,
				Domain:     domain,
				Type:       sourceType,
				Confidence: confidence,
				Extracted:  extracted,
			},
			match: attrScore,
		})
	}

	// The ambiguity decision ranks by raw attribute match; type-weighted
	// confidence only orders the reported sources.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].match > candidates[j].match
	})
	if len(candidates) > maxSources {
		candidates = candidates[:maxSources]
	}

	resolved := e.decideAttributes(candidates, linkedinURL)
	ambiguityFlag := !resolved || ambiguityRisk

	question := ""
	switch {
	case !resolved:
		question = multiProfileQuestion(name, candidates)
	case ambiguityRisk:
		question = "Name-only input has high ambiguity. Can you share company, designation, or location?"
	}

	topMatch := 0.0
	if len(candidates) > 0 {
		topMatch = candidates[0].match
	}

	sources := make([]model.ResolvedSource, len(candidates))
	for i, c := range candidates {
		sources[i] = c.source
	}
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Confidence > sources[j].Confidence
	})

	identity := aggregateIdentity(sources)
	identity.Confidence = resolvedConfidence(topMatch, ambiguityFlag, sources)

	return &model.ResolutionReport{
		ResolvedIdentity:      identity,
		AmbiguityFlag:         ambiguityFlag,
		ClarificationQuestion: question,
		Sources:               sources,
		AggregatedSummary:     e.resolutionSummary(ctx, sources, ambiguityFlag, question),
	}, nil
}

// extract runs generative attribute extraction with the heuristic fallback.
func (e *Engine) extract(ctx context.Context, req llm.ExtractRequest) model.ExtractedAttributes {
	if e.provider != nil {
		if attrs, err := e.provider.ExtractAttributes(ctx, req); err == nil && attrs != nil {
			return *attrs
		}
	}
	return llm.HeuristicExtract(req)
}

// attrCandidate pairs a reported source with its raw attribute-match score,
// which the disambiguation gates work from.
type attrCandidate struct {
	source model.ResolvedSource
	match  float64
}

// decideAttributes applies the attribute-mode ambiguity gates over
// candidates ranked by attribute match. A direct profile URL settles
// identity; an empty evidence set has nothing to be ambiguous between.
func (e *Engine) decideAttributes(candidates []attrCandidate, linkedinURL string) bool {
	if linkedinURL != "" {
		return true
	}
	if len(candidates) == 0 {
		return true
	}
	top := candidates[0].match
	if top < e.config.Resolver.AttributeThreshold {
		return false
	}
	if len(candidates) > 1 {
		if top-candidates[1].match < e.config.Resolver.MarginThreshold {
			return false
		}
	}
	return true
}

// resolvedConfidence keeps the top attribute-match score while identity is
// still ambiguous; once unambiguous, it averages the strongest source
// confidences instead.
func resolvedConfidence(topMatch float64, ambiguous bool, sources []model.ResolvedSource) float64 {
	if ambiguous || len(sources) == 0 {
		return score.Round3(topMatch)
	}
	confidences := make([]float64, len(sources))
	for i, s := range sources {
		confidences[i] = s.Confidence
	}
	return score.MeanTopConfidence(confidences, 5)
}

// multiProfileQuestion phrases the clarification ask from the distinct
// company hints of the strongest candidates, or falls back to the generic
// form.
func multiProfileQuestion(name string, candidates []attrCandidate) string {
	var hints []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		if c.source.Extracted.Company == nil {
			continue
		}
		hint := textutil.NormalizeWhitespace(*c.source.Extracted.Company)
		key := strings.ToLower(hint)
		if hint == "" || seen[key] {
			continue
		}
		seen[key] = true
		hints = append(hints, hint)
		if len(hints) == 3 {
			break
		}
	}
	if len(hints) > 0 {
		return fmt.Sprintf("Multiple profiles match. Is this the %s associated with %s?", name, strings.Join(hints, " | "))
	}
	return fmt.Sprintf("Multiple profiles match for %s. Can you confirm company, role, or location?", name)
}

// aggregateIdentity merges sources ranked by confidence into one identity,
// first non-nil value per field. An empty evidence set yields all-nil
// fields; no input echo fills the gaps.
func aggregateIdentity(sources []model.ResolvedSource) model.ResolvedIdentity {
	var identity model.ResolvedIdentity
	for _, s := range sources {
		if identity.Name == nil {
			identity.Name = s.Extracted.Name
		}
		if identity.Company == nil {
			identity.Company = s.Extracted.Company
		}
		if identity.Designation == nil {
			identity.Designation = s.Extracted.Designation
		}
		if identity.Location == nil {
			identity.Location = s.Extracted.Location
		}
	}
	return identity
}

// withDirectProfile prepends a synthetic result for a caller-supplied
// profile URL absent from the search results, so the direct anchor always
// participates in extraction and ranking.
func withDirectProfile(results []model.RawResult, linkedinURL string) []model.RawResult {
	if linkedinURL == "" {
		return results
	}
	for _, r := range results {
		if r.URL == linkedinURL {
			return results
		}
	}
	synthetic := model.RawResult{
		URL:     linkedinURL,
		Title:   "LinkedIn profile",
		Snippet: "Direct profile URL provided by user.",
	}
	return append([]model.RawResult{synthetic}, results...)
}
