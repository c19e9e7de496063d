// Package cluster groups scored search hits into candidate identities using
// deterministic structural keys. Identical inputs always yield the same
// partition and ranking, so re-runs on the same evidence are idempotent.
package cluster

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/score"
	"github.com/osintlab/namesake/internal/textutil"
)

// companyHintRe matches the first capitalized phrase following at/with/from.
var companyHintRe = regexp.MustCompile(`\b(?:at|with|from)\s+([A-Z][A-Za-z0-9&.\- ]{1,40})`)

// Key derives the cluster key for a hit, in priority order: LinkedIn profile
// slug, GitHub owner, name+company hint, bare name. URL-structural keys come
// first because they never merge distinct profile-bearing sources; the bare
// name fallback may over-merge people sharing a name, which is an accepted
// approximation.
func Key(hitURL, name, snippet string) string {
	parsed, err := url.Parse(hitURL)
	if err == nil {
		host := strings.ToLower(parsed.Host)
		path := strings.ToLower(strings.Trim(parsed.Path, "/"))
		if strings.Contains(host, "linkedin.com") && strings.Contains(strings.ToLower(parsed.Path), "/in/") {
			segments := strings.Split(path, "/")
			return "linkedin:" + segments[len(segments)-1]
		}
		if strings.Contains(host, "github.com") && path != "" {
			return "github:" + strings.SplitN(path, "/", 2)[0]
		}
	}
	if hint := CompanyHint(snippet); hint != "" {
		return "name+company:" + strings.ToLower(name) + ":" + strings.ToLower(hint)
	}
	return "name:" + strings.ToLower(name)
}

// CompanyHint extracts a company-looking phrase from free text, or "".
func CompanyHint(text string) string {
	m := companyHintRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimRight(textutil.NormalizeWhitespace(m[1]), ".,;")
}

// Candidates groups ranked hits into candidates. Hits must arrive sorted by
// relevance descending; each candidate's confidence is the mean relevance of
// its up-to-3 strongest members, and the returned slice is sorted by
// confidence descending; ties keep the ranked-hit insertion order, so the
// cluster holding the strongest lead hit stays first.
func Candidates(rankedHits []model.SearchHit, name string) []model.Candidate {
	grouped := make(map[string][]model.SearchHit)
	var order []string
	for _, hit := range rankedHits {
		key := Key(hit.URL, name, hit.Snippet)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], hit)
	}

	candidates := make([]model.Candidate, 0, len(order))
	for _, key := range order {
		members := grouped[key]
		top := members
		if len(top) > 3 {
			top = top[:3]
		}
		sum := 0.0
		for _, hit := range top {
			sum += hit.Relevance
		}
		confidence := score.Round3(sum / float64(len(top)))

		lead := top[0]
		label := lead.Title
		if label == "" {
			label = key
		}
		if runes := []rune(label); len(runes) > 120 {
			label = string(runes[:120])
		}

		profileURL := ""
		if lead.Source == model.SourceLinkedIn || lead.Source == model.SourceGitHub {
			profileURL = lead.URL
		}

		hintText := lead.Snippet
		if hintText == "" {
			hintText = lead.Title
		}

		var evidence []string
		for _, hit := range top {
			if hit.Snippet != "" {
				evidence = append(evidence, hit.Snippet)
			}
		}
		if len(evidence) > 3 {
			evidence = evidence[:3]
		}

		candidates = append(candidates, model.Candidate{
			ClusterKey:  key,
			Label:       label,
			Confidence:  confidence,
			ProfileURL:  profileURL,
			CompanyHint: CompanyHint(hintText),
			Evidence:    evidence,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	return candidates
}
