// Package pipeline orchestrates the two resolution pipelines: the broad
// intelligence report and attribute-qualified resolution. Both share the
// search dispatcher, the page fetcher and the optional generative provider;
// all state is scoped to a single call.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/osintlab/namesake/internal/fetch"
	"github.com/osintlab/namesake/internal/llm"
	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/search"
)

// Searcher dispatches a query set and returns deduplicated raw results.
type Searcher interface {
	Dispatch(ctx context.Context, queries []string) []model.RawResult
}

// PageFetcher retrieves a page as plain text; failures yield "".
type PageFetcher interface {
	Text(ctx context.Context, url string, maxChars int) string
}

// Engine runs resolution calls against injected collaborators.
type Engine struct {
	searcher Searcher
	fetcher  PageFetcher
	provider llm.Provider // nil when generative features are disabled
	config   *model.Config
}

// NewEngine wires an engine from configuration: Google CSE primary with the
// DuckDuckGo fallback, the robots-aware page fetcher, and the optional LLM
// provider.
func NewEngine(cfg *model.Config) *Engine {
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			provider = p
		}
	}

	primary := search.NewGoogleCSE(cfg.Search.GoogleAPIKey, cfg.Search.GoogleCX, cfg.Search.Timeout)
	secondary := search.NewDuckDuckGo(cfg.HTTP.UserAgent, cfg.Search.Timeout)

	return &Engine{
		searcher: search.NewDispatcher(primary, secondary, cfg.Search),
		fetcher:  fetch.New(cfg.HTTP, cfg.Concurrency),
		provider: provider,
		config:   cfg,
	}
}

// maxSourcesOrDefault clamps the caller's source budget to [3,25], with 5 as
// the unset default.
func maxSourcesOrDefault(maxSources int) int {
	switch {
	case maxSources == 0:
		return 5
	case maxSources < 3:
		return 3
	case maxSources > 25:
		return 25
	}
	return maxSources
}

// fetchTexts retrieves page text for every URL concurrently, bounded by the
// configured worker count. Results keep input order; a failing fetch leaves
// "" in its slot and never disturbs its siblings.
func (e *Engine) fetchTexts(ctx context.Context, urls []string, maxChars int) []string {
	texts := make([]string, len(urls))
	workers := e.config.Concurrency.FetchWorkers
	if workers <= 0 {
		workers = 4
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			texts[i] = e.fetcher.Text(ctx, u, maxChars)
		}(i, u)
	}
	wg.Wait()
	return texts
}
