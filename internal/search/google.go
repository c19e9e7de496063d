package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/textutil"
)

const googleCSEEndpoint = "https://www.googleapis.com/customsearch/v1"

// GoogleCSE is the primary search provider, backed by the Google Custom
// Search JSON API. Unconfigured (missing key or cx) means unavailable.
type GoogleCSE struct {
	apiKey     string
	cx         string
	endpoint   string
	httpClient *http.Client
}

// NewGoogleCSE creates a Google Custom Search provider.
func NewGoogleCSE(apiKey, cx string, timeout time.Duration) *GoogleCSE {
	return &GoogleCSE{
		apiKey:   apiKey,
		cx:       cx,
		endpoint: googleCSEEndpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name.
func (g *GoogleCSE) Name() string { return "google_cse" }

// Available reports whether API credentials are configured.
func (g *GoogleCSE) Available() bool { return g.apiKey != "" && g.cx != "" }

type cseResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Search runs one query against the Custom Search API.
func (g *GoogleCSE) Search(ctx context.Context, query string, limit int) ([]model.RawResult, error) {
	if !g.Available() {
		return nil, fmt.Errorf("google cse: not configured")
	}

	// The API caps num at 10.
	num := limit
	if num < 1 {
		num = 1
	}
	if num > 10 {
		num = 10
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", g.apiKey)
	params.Set("cx", g.cx)
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google cse search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google cse: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2_000_000))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var payload cseResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var results []model.RawResult
	for _, item := range payload.Items {
		link := textutil.NormalizeLink(item.Link)
		if link == "" {
			continue
		}
		results = append(results, model.RawResult{
			URL:     link,
			Title:   textutil.NormalizeWhitespace(item.Title),
			Snippet: textutil.NormalizeWhitespace(item.Snippet),
		})
		if len(results) >= num {
			break
		}
	}
	return results, nil
}
