package search

import (
	"context"
	"sync"
	"time"

	"github.com/osintlab/namesake/internal/model"
)

const (
	// MaxQueries caps the distinct queries dispatched per resolution call.
	MaxQueries = 6
	// MaxPerQuery caps the hits requested per query.
	MaxPerQuery = 8
)

// Dispatcher fans queries out to the primary provider and falls back to the
// secondary when the primary is unconfigured or comes back empty.
type Dispatcher struct {
	primary    Provider
	secondary  Provider
	timeout    time.Duration
	maxQueries int
	perQuery   int
}

// NewDispatcher creates a dispatcher over a primary and a secondary provider.
func NewDispatcher(primary, secondary Provider, cfg model.SearchConfig) *Dispatcher {
	maxQueries := cfg.MaxQueries
	if maxQueries <= 0 || maxQueries > MaxQueries {
		maxQueries = MaxQueries
	}
	perQuery := cfg.ResultsPerQuery
	if perQuery <= 0 || perQuery > MaxPerQuery {
		perQuery = MaxPerQuery
	}
	return &Dispatcher{
		primary:    primary,
		secondary:  secondary,
		timeout:    cfg.Timeout,
		maxQueries: maxQueries,
		perQuery:   perQuery,
	}
}

// Dispatch issues every query concurrently against the primary provider,
// retries the whole set on the secondary when the primary yields nothing,
// and returns the URL-deduplicated union (first seen wins). A failing query
// contributes an empty list and never aborts its siblings.
func (d *Dispatcher) Dispatch(ctx context.Context, queries []string) []model.RawResult {
	if len(queries) > d.maxQueries {
		queries = queries[:d.maxQueries]
	}
	if len(queries) == 0 {
		return nil
	}

	var grouped [][]model.RawResult
	if d.primary != nil && d.primary.Available() {
		grouped = d.fanOut(ctx, d.primary, queries)
	}
	if totalHits(grouped) == 0 && d.secondary != nil && d.secondary.Available() {
		grouped = d.fanOut(ctx, d.secondary, queries)
	}

	seen := make(map[string]bool)
	var merged []model.RawResult
	for _, hits := range grouped {
		for _, hit := range hits {
			if hit.URL == "" || seen[hit.URL] {
				continue
			}
			seen[hit.URL] = true
			merged = append(merged, hit)
		}
	}
	return merged
}

// fanOut runs one provider over all queries concurrently and joins before
// returning (full barrier; no partial streaming).
func (d *Dispatcher) fanOut(ctx context.Context, provider Provider, queries []string) [][]model.RawResult {
	grouped := make([][]model.RawResult, len(queries))
	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			callCtx := ctx
			if d.timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, d.timeout)
				defer cancel()
			}
			hits, err := provider.Search(callCtx, query, d.perQuery)
			if err != nil {
				// Transport failures degrade to empty results.
				return
			}
			grouped[i] = hits
		}(i, query)
	}
	wg.Wait()
	return grouped
}

func totalHits(grouped [][]model.RawResult) int {
	total := 0
	for _, hits := range grouped {
		total += len(hits)
	}
	return total
}
