package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/osintlab/namesake/internal/cache"
)

const robotsTTL = 30 * time.Minute

// robotsChecker answers robots.txt queries for page fetches. Payloads are
// cached per host with TTL eviction; an unreachable robots.txt allows the
// fetch.
type robotsChecker struct {
	httpClient *http.Client
	userAgent  string
	store      cache.Cache
}

func newRobotsChecker(userAgent string, timeout time.Duration, store cache.Cache) *robotsChecker {
	if store == nil {
		store = cache.NewMemory(robotsTTL, 2*robotsTTL)
	}
	return &robotsChecker{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		store:      store,
	}
}

// allowed reports whether the URL may be fetched under robots.txt rules.
func (r *robotsChecker) allowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)

	data, err := r.robotsData(ctx, robotsURL)
	if err != nil {
		return true
	}
	return data.TestAgent(parsed.Path, r.userAgent)
}

func (r *robotsChecker) robotsData(ctx context.Context, robotsURL string) (*robotstxt.RobotsData, error) {
	key := cache.Key(robotsURL)
	if body, found := r.store.Get(key); found {
		return robotstxt.FromBytes(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Missing robots.txt means everything is allowed.
	if resp.StatusCode == http.StatusNotFound {
		r.store.Set(key, nil, robotsTTL)
		return robotstxt.FromStatusAndBytes(404, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}

	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}
	r.store.Set(key, body, robotsTTL)
	return data, nil
}
