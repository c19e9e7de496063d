// Package fetch retrieves candidate pages as plain text. Failures of any
// kind (transport errors, robots denial, non-HTML bodies) degrade to empty
// text; the fetcher never propagates an error to its caller.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/textutil"
	"github.com/osintlab/namesake/internal/worker"
)

// Fetcher downloads pages and reduces them to normalized text.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	maxChars   int
	robots     *robotsChecker
	limiter    *worker.Limiter
}

// New creates a Fetcher from the HTTP and concurrency configuration.
func New(cfg model.HTTPConfig, conc model.ConcurrencyConfig) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		maxChars:  cfg.MaxPageChars,
		limiter:   worker.NewLimiter(conc.DomainRPS, conc.DomainBurst),
	}
	if cfg.RespectRobots {
		f.robots = newRobotsChecker(cfg.UserAgent, cfg.Timeout, nil)
	}
	return f
}

// Text fetches a URL and returns its visible text, capped at maxChars when
// positive. Every failure path returns "".
func (f *Fetcher) Text(ctx context.Context, rawURL string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = f.maxChars
	}

	if f.robots != nil && !f.robots.allowed(ctx, rawURL) {
		return ""
	}
	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return ""
	}

	text := ExtractText(string(body))
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}
	return text
}

// skipTags never contribute visible text.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"svg":      true,
}

// ExtractText reduces an HTML document to whitespace-normalized visible
// text. Non-HTML input falls through the parser and yields its raw text.
func ExtractText(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return textutil.NormalizeWhitespace(page)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return textutil.NormalizeWhitespace(sb.String())
}
