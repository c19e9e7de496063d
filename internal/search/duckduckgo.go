package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/textutil"
)

const duckduckgoEndpoint = "https://duckduckgo.com/html/"

// DuckDuckGo is the secondary provider: the HTML results page scraped and
// parsed into raw results. It needs no credentials and is always available.
type DuckDuckGo struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo HTML provider.
func NewDuckDuckGo(userAgent string, timeout time.Duration) *DuckDuckGo {
	return &DuckDuckGo{
		endpoint:  duckduckgoEndpoint,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name.
func (d *DuckDuckGo) Name() string { return "duckduckgo" }

// Available always reports true; the HTML endpoint needs no configuration.
func (d *DuckDuckGo) Available() bool { return true }

// Search fetches and parses one results page.
func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]model.RawResult, error) {
	params := url.Values{}
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2_000_000))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return ParseResultsPage(string(body), limit), nil
}

// ParseResultsPage extracts results from a DuckDuckGo HTML page. Each
// .result block contributes one result from its .result__a link and
// .result__snippet text.
func ParseResultsPage(page string, limit int) []model.RawResult {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var results []model.RawResult
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if limit > 0 && len(results) >= limit {
			return
		}
		if n.Type == html.ElementNode && hasClass(n, "result") {
			if r, ok := parseResultBlock(n); ok {
				results = append(results, r)
			}
			// Result blocks do not nest; no need to descend further.
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results
}

func parseResultBlock(block *html.Node) (model.RawResult, bool) {
	link := findByClass(block, "a", "result__a")
	if link == nil {
		return model.RawResult{}, false
	}
	href := strings.TrimSpace(attr(link, "href"))
	if href == "" {
		return model.RawResult{}, false
	}

	snippet := ""
	if sn := findByClass(block, "", "result__snippet"); sn != nil {
		snippet = textutil.NormalizeWhitespace(nodeText(sn))
	}

	return model.RawResult{
		URL:     textutil.NormalizeLink(href),
		Title:   textutil.NormalizeWhitespace(nodeText(link)),
		Snippet: snippet,
	}, true
}

// findByClass returns the first descendant element with the given tag (any
// tag when empty) carrying the class token.
func findByClass(n *html.Node, tag, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (tag == "" || c.Data == tag) && hasClass(c, class) {
			return c
		}
		if found := findByClass(c, tag, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(attr(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
