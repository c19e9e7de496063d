package model

// Resolution status values. The disambiguation engine decides exactly once
// per call; there are no intermediate states.
const (
	StatusResolved           = "resolved"
	StatusNeedsClarification = "needs_clarification"
)

// IntelligenceInput is the request shape for the broad intelligence pipeline.
// At least one of LinkedInURL or Name must be present; that check belongs to
// the caller's boundary, the pipeline answers missing input with a
// clarification response rather than an error.
type IntelligenceInput struct {
	LinkedInURL string   `json:"linkedin_url,omitempty"`
	Name        string   `json:"name,omitempty"`
	Qualifiers  []string `json:"qualifiers"`
	MaxSources  int      `json:"max_sources"`
}

// IntelligenceReport is the intelligence pipeline's result payload.
type IntelligenceReport struct {
	Status                 string               `json:"status"`
	Query                  string               `json:"query"`
	Disambiguated          bool                 `json:"disambiguated"`
	ClarificationQuestions []string             `json:"clarification_questions"`
	Candidates             []Candidate          `json:"candidates"`
	Sources                []IntelligenceSource `json:"sources"`
	Summary                string               `json:"summary"`
}

// ResolveInput is the request shape for attribute-qualified resolution.
type ResolveInput struct {
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Name        string `json:"name,omitempty"`
	Company     string `json:"company,omitempty"`
	Designation string `json:"designation,omitempty"`
	Location    string `json:"location,omitempty"`
	MaxSources  int    `json:"max_sources"`
}

// ResolutionReport is the attribute-resolution pipeline's result payload.
type ResolutionReport struct {
	ResolvedIdentity      ResolvedIdentity `json:"resolved_identity"`
	AmbiguityFlag         bool             `json:"ambiguity_flag"`
	ClarificationQuestion string           `json:"clarification_question,omitempty"`
	Sources               []ResolvedSource `json:"sources"`
	AggregatedSummary     string           `json:"aggregated_summary"`
}
