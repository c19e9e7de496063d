// Package llm holds the optional generative collaborators: search query
// proposal, structured attribute extraction and summary polishing. Every
// call site owns a deterministic fallback, so a missing or failing provider
// never degrades a resolution beyond heuristic quality.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/osintlab/namesake/internal/model"
)

// Provider is a generative backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// GenerateQueries proposes search queries for a person.
	GenerateQueries(ctx context.Context, req QueryRequest) ([]string, error)

	// ExtractAttributes pulls structured identity fields out of page text.
	ExtractAttributes(ctx context.Context, req ExtractRequest) (*model.ExtractedAttributes, error)

	// PolishSummary rewrites a deterministic summary seed.
	PolishSummary(ctx context.Context, seed string) (string, error)
}

// QueryRequest is the input for query generation.
type QueryRequest struct {
	Name        string
	LinkedInURL string
	Company     string
}

// ExtractRequest is the input for attribute extraction.
type ExtractRequest struct {
	Title    string
	Snippet  string
	URL      string
	PageText string
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", or "" (disabled).
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey for OpenAI.
	APIKey string

	// BaseURL for custom endpoints (e.g. Ollama).
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}

// extractPrompt builds the strict-JSON extraction prompt.
func extractPrompt(req ExtractRequest) string {
	text := req.PageText
	if len(text) > 3500 {
		text = text[:3500]
	}
	return fmt.Sprintf(
		"Extract the following fields from the text and return strict JSON only with keys: "+
			"name, company, designation, location, education, short_bio. "+
			"If unknown, set null.\n\n"+
			"Title: %s\nSnippet: %s\nURL: %s\nText: %s",
		req.Title, req.Snippet, req.URL, text)
}

// queryPrompt builds the query generation prompt.
func queryPrompt(req QueryRequest) string {
	var sb strings.Builder
	sb.WriteString("Propose up to 5 web search queries to identify the public professional profile of a person. ")
	sb.WriteString("Return strict JSON only with key queries (array of strings).\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", req.Name)
	if req.LinkedInURL != "" {
		fmt.Fprintf(&sb, "LinkedIn: %s\n", req.LinkedInURL)
	}
	if req.Company != "" {
		fmt.Fprintf(&sb, "Company: %s\n", req.Company)
	}
	return sb.String()
}

// polishPrompt builds the summary polishing prompt.
func polishPrompt(seed string) string {
	return "Using the structured extracted information from all validated sources, " +
		"generate a concise professional summary of the individual. " +
		"If conflicting information exists, prioritize higher confidence sources.\n\nData: " + seed
}
