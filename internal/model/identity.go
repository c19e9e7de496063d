package model

// ExtractedAttributes holds structured fields pulled out of a source's
// title/snippet/page text. Absent fields are nil, never empty strings.
type ExtractedAttributes struct {
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Designation *string `json:"designation"`
	Location    *string `json:"location"`
	Education   *string `json:"education"`
	ShortBio    *string `json:"short_bio"`
}

// ResolvedSource is one piece of evidence after content extraction and trust
// weighting, ranked descending by confidence in output payloads.
type ResolvedSource struct {
	URL        string              `json:"url"`
	Domain     string              `json:"domain"`
	Type       SourceType          `json:"type"`
	Confidence float64             `json:"confidence"` // [0,1], 3 decimals
	Extracted  ExtractedAttributes `json:"extracted_info"`
}

// IntelligenceSource is the evidence record emitted by the intelligence
// pipeline: the raw hit plus fetched page text and blended confidence.
type IntelligenceSource struct {
	Source     SourceType `json:"source"`
	URL        string     `json:"url"`
	Title      string     `json:"title"`
	Snippet    string     `json:"snippet"`
	Text       string     `json:"text"`
	Confidence float64    `json:"confidence"`
}

// ResolvedIdentity is the per-field merge over sources ordered by confidence
// descending: for each field the first non-nil value wins, independently of
// the other fields.
type ResolvedIdentity struct {
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Designation *string `json:"designation"`
	Location    *string `json:"location"`
	Confidence  float64 `json:"confidence"`
}
