package llm

import (
	"regexp"
	"strings"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/textutil"
)

var (
	companyRe  = regexp.MustCompile(`\b(?:at|with|from)\s+([A-Z][A-Za-z0-9&.\- ]{1,40})`)
	locationRe = regexp.MustCompile(`\b(?:based in|located in|from)\s+([A-Z][A-Za-z .\-]{1,40})`)
)

// HeuristicExtract is the deterministic fallback for attribute extraction:
// regex phrase matching over title + snippet + page text. Name, designation
// and education stay nil; only company, location and a short bio are
// recoverable without a generative model.
func HeuristicExtract(req ExtractRequest) model.ExtractedAttributes {
	blob := textutil.NormalizeWhitespace(req.Title + ". " + req.Snippet + ". " + req.PageText)

	var attrs model.ExtractedAttributes
	if m := companyRe.FindStringSubmatch(blob); m != nil {
		company := strings.TrimRight(textutil.NormalizeWhitespace(m[1]), ".,;")
		if company != "" {
			attrs.Company = &company
		}
	}
	if m := locationRe.FindStringSubmatch(blob); m != nil {
		location := strings.TrimRight(textutil.NormalizeWhitespace(m[1]), ".,;")
		if location != "" {
			attrs.Location = &location
		}
	}
	if blob != "" && blob != ". ." {
		bio := blob
		if len(bio) > 280 {
			bio = bio[:280]
		}
		attrs.ShortBio = &bio
	}
	return attrs
}

// FallbackQueries is the deterministic query generator used when no provider
// is configured or the provider fails: the bare name, then name+company.
func FallbackQueries(req QueryRequest) []string {
	var queries []string
	if req.Name != "" {
		queries = append(queries, req.Name)
		if req.Company != "" {
			queries = append(queries, req.Name+" "+req.Company)
		}
	}
	if req.LinkedInURL != "" {
		queries = append(queries, req.LinkedInURL)
	}
	return queries
}
