package model

// SourceType is a closed label set for classified evidence sources. The two
// resolution modes use different subsets of these labels, but every URL maps
// to exactly one label within its mode.
type SourceType string

const (
	SourceLinkedIn       SourceType = "linkedin"
	SourceGitHub         SourceType = "github"
	SourceYouTube        SourceType = "youtube"
	SourceAboutMe        SourceType = "about_me"
	SourceXTwitter       SourceType = "x_twitter"
	SourceNews           SourceType = "news"
	SourceWebsite        SourceType = "website"
	SourceMajorNews      SourceType = "major_news"
	SourcePersonalBlog   SourceType = "personal_blog"
	SourceCompanyWebsite SourceType = "company_website"
	SourceOther          SourceType = "other"
)

// RawResult is one unscored record returned by a search provider.
type RawResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchHit is a scored search result. Immutable once scored; hits with
// relevance <= 0 never enter clustering.
type SearchHit struct {
	URL       string     `json:"url"`
	Title     string     `json:"title"`
	Snippet   string     `json:"snippet"`
	Source    SourceType `json:"source"`
	Relevance float64    `json:"relevance"` // [0,1], 3 decimals
}

// Candidate is a clustered identity hypothesis built from one or more hits
// sharing a cluster key. Confidence is the mean relevance of up to the 3
// strongest member hits. A Candidate never outlives a single resolution call.
type Candidate struct {
	ClusterKey  string   `json:"cluster_key"`
	Label       string   `json:"label"`
	Confidence  float64  `json:"confidence"` // [0,1], 3 decimals
	ProfileURL  string   `json:"profile_url,omitempty"`
	CompanyHint string   `json:"company_hint,omitempty"`
	Evidence    []string `json:"evidence,omitempty"` // up to 3 snippets
}
