// Package source maps URLs to semantic source types and carries the per-type
// trust tables used by confidence aggregation.
package source

import (
	"regexp"
	"strings"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/textutil"
)

// newsDomains are the outlets treated as news sources by the intelligence
// label set.
var newsDomains = []string{
	"techcrunch.com",
	"forbes.com",
	"businessinsider.com",
	"economictimes.indiatimes.com",
	"livemint.com",
	"moneycontrol.com",
	"ndtv.com",
	"timesofindia.indiatimes.com",
	"reuters.com",
	"bloomberg.com",
}

// majorNewsDomains are the outlets the attribute label set treats as
// major_news.
var majorNewsDomains = []string{
	"reuters.com",
	"bloomberg.com",
	"forbes.com",
	"techcrunch.com",
	"wsj.com",
	"nytimes.com",
	"economictimes.indiatimes.com",
	"business-standard.com",
}

// TrustWeights is the a-priori reliability table for intelligence-mode
// sources. Values are multipliers in (0,1].
var TrustWeights = map[model.SourceType]float64{
	model.SourceLinkedIn: 0.9,
	model.SourceGitHub:   0.86,
	model.SourceYouTube:  0.75,
	model.SourceNews:     0.8,
	model.SourceAboutMe:  0.8,
	model.SourceXTwitter: 0.65,
	model.SourceWebsite:  0.68,
	model.SourceOther:    0.55,
}

// SourceWeights is the reliability table for attribute-resolution sources.
var SourceWeights = map[model.SourceType]float64{
	model.SourceLinkedIn:       1.0,
	model.SourceCompanyWebsite: 0.9,
	model.SourceMajorNews:      0.8,
	model.SourceGitHub:         0.7,
	model.SourceYouTube:        0.6,
	model.SourcePersonalBlog:   0.4,
	model.SourceOther:          0.5,
}

// TrustWeight returns the intelligence-mode trust weight for a source type,
// falling back to the "other" weight for unknown labels.
func TrustWeight(t model.SourceType) float64 {
	if w, ok := TrustWeights[t]; ok {
		return w
	}
	return TrustWeights[model.SourceOther]
}

// SourceWeight returns the attribute-mode weight for a source type.
func SourceWeight(t model.SourceType) float64 {
	if w, ok := SourceWeights[t]; ok {
		return w
	}
	return SourceWeights[model.SourceOther]
}

// Classify maps a URL to the intelligence-mode label set. Pure function of
// the URL; every input yields exactly one label.
func Classify(rawURL string) model.SourceType {
	host := textutil.Domain(rawURL)
	switch {
	case host == "":
		return model.SourceOther
	case strings.Contains(host, "linkedin.com"):
		return model.SourceLinkedIn
	case strings.Contains(host, "github.com"):
		return model.SourceGitHub
	case strings.Contains(host, "youtube.com"), strings.Contains(host, "youtu.be"):
		return model.SourceYouTube
	case strings.Contains(host, "about.me"):
		return model.SourceAboutMe
	case strings.Contains(host, "twitter.com"), strings.Contains(host, "x.com"):
		return model.SourceXTwitter
	case containsAny(host, newsDomains):
		return model.SourceNews
	default:
		return model.SourceWebsite
	}
}

// HighTrust reports whether a source type earns the scorer's high-trust
// bonus.
func HighTrust(t model.SourceType) bool {
	return t == model.SourceLinkedIn || t == model.SourceGitHub || t == model.SourceNews
}

var alnumRe = regexp.MustCompile(`[^a-z0-9]`)

// ClassifyDomain maps a domain to the attribute-mode label set. A company
// hint promotes a matching domain to company_website: the hint's
// alphanumeric-only form must be a substring of the first domain label's
// alphanumeric-only form.
func ClassifyDomain(domain string, companyHint string) model.SourceType {
	domain = strings.ToLower(domain)
	switch {
	case strings.Contains(domain, "linkedin.com"):
		return model.SourceLinkedIn
	case strings.Contains(domain, "github.com"):
		return model.SourceGitHub
	case strings.Contains(domain, "youtube.com"), strings.Contains(domain, "youtu.be"):
		return model.SourceYouTube
	case containsAny(domain, majorNewsDomains):
		return model.SourceMajorNews
	case strings.Contains(domain, "blog"),
		strings.Contains(domain, "medium.com"),
		strings.Contains(domain, "substack.com"):
		return model.SourcePersonalBlog
	}
	if companyHint != "" {
		normalized := alnumRe.ReplaceAllString(strings.ToLower(companyHint), "")
		hostOnly := strings.SplitN(domain, ":", 2)[0]
		firstLabel := alnumRe.ReplaceAllString(strings.SplitN(hostOnly, ".", 2)[0], "")
		if normalized != "" && firstLabel != "" && strings.Contains(firstLabel, normalized) {
			return model.SourceCompanyWebsite
		}
	}
	return model.SourceOther
}

func containsAny(host string, domains []string) bool {
	for _, d := range domains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}
