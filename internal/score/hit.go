// Package score computes the relevance and confidence values of the
// resolution pipelines. Every exported value is clamped to [0,1] and rounded
// to 3 decimals for output stability.
package score

import (
	"math"
	"strings"

	"github.com/osintlab/namesake/internal/source"
	"github.com/osintlab/namesake/internal/textutil"
)

// Relevance component weights.
const (
	nameWeight         = 0.48
	qualifierWeight    = 0.14
	qualifierCap       = 0.42
	directProfileBonus = 0.35
	highTrustBonus     = 0.10
	zeroNameBase       = 0.30
	maxQualifiers      = 4
)

// HitInput is everything the hit scorer looks at for one raw result.
type HitInput struct {
	URL         string
	Title       string
	Snippet     string
	NameTokens  []string
	Qualifiers  []string
	LinkedInURL string
}

// Hit scores a search hit against the input identity. The result is a
// bounded weighted sum:
//
//	base  0.30 when no name tokens exist but the direct-profile bonus applies
//	name  0.48 * fraction of name tokens present in title+snippet+url
//	qual  0.14 per matched qualifier (max 4), capped at 0.42
//	link  0.35 when the hit URL matches a caller-supplied LinkedIn URL
//	src   0.10 when the classified source is high-trust
func Hit(in HitInput) float64 {
	blob := strings.ToLower(in.Title + " " + in.Snippet + " " + in.URL)
	hitURL := strings.ToLower(in.URL)

	nameScore := 0.0
	if len(in.NameTokens) > 0 {
		matches := 0
		for _, token := range in.NameTokens {
			if strings.Contains(blob, token) {
				matches++
			}
		}
		nameScore = float64(matches) / float64(len(in.NameTokens))
	}

	qualifierScore := 0.0
	qualifiers := in.Qualifiers
	if len(qualifiers) > maxQualifiers {
		qualifiers = qualifiers[:maxQualifiers]
	}
	for _, qualifier := range qualifiers {
		q := strings.ToLower(strings.TrimSpace(qualifier))
		if q != "" && strings.Contains(blob, q) {
			qualifierScore += qualifierWeight
		}
	}
	qualifierScore = math.Min(qualifierCap, qualifierScore)

	directBonus := 0.0
	if in.LinkedInURL != "" && strings.Contains(hitURL, "linkedin.com") {
		normalized := strings.ToLower(textutil.NormalizeWhitespace(in.LinkedInURL))
		if normalized != "" && strings.Contains(hitURL, normalized) {
			directBonus = directProfileBonus
		}
	}

	sourceBonus := 0.0
	if source.HighTrust(source.Classify(in.URL)) {
		sourceBonus = highTrustBonus
	}

	// URL-only identification still has to score meaningfully.
	base := 0.0
	if len(in.NameTokens) == 0 && directBonus > 0 {
		base = zeroNameBase
	}

	raw := base + nameWeight*nameScore + qualifierScore + directBonus + sourceBonus
	return Round3(clamp01(raw))
}

// Round3 rounds to 3 decimals.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	return math.Min(1.0, math.Max(0.0, v))
}
