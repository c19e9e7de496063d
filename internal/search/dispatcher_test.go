package search

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/osintlab/namesake/internal/model"
)

// fakeProvider returns canned results per query and records the queries it
// was asked.
type fakeProvider struct {
	name      string
	available bool
	results   map[string][]model.RawResult
	err       error

	mu      sync.Mutex
	queries []string
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) Search(ctx context.Context, query string, limit int) ([]model.RawResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	hits := f.results[query]
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func testSearchConfig() model.SearchConfig {
	return model.SearchConfig{
		Timeout:         time.Second,
		MaxQueries:      6,
		ResultsPerQuery: 8,
	}
}

func TestDispatch_PrimaryResults(t *testing.T) {
	primary := &fakeProvider{
		name: "primary", available: true,
		results: map[string][]model.RawResult{
			"jane doe": {{URL: "https://a.example", Title: "A"}},
		},
	}
	secondary := &fakeProvider{name: "secondary", available: true}

	d := NewDispatcher(primary, secondary, testSearchConfig())
	results := d.Dispatch(context.Background(), []string{"jane doe"})

	if len(results) != 1 || results[0].URL != "https://a.example" {
		t.Fatalf("Expected the primary's result, got %v", results)
	}
	if len(secondary.queries) != 0 {
		t.Errorf("Expected secondary untouched, got queries %v", secondary.queries)
	}
}

func TestDispatch_FallbackWhenPrimaryEmpty(t *testing.T) {
	primary := &fakeProvider{name: "primary", available: true}
	secondary := &fakeProvider{
		name: "secondary", available: true,
		results: map[string][]model.RawResult{
			"jane doe": {{URL: "https://b.example", Title: "B"}},
		},
	}

	d := NewDispatcher(primary, secondary, testSearchConfig())
	results := d.Dispatch(context.Background(), []string{"jane doe"})

	if len(results) != 1 || results[0].URL != "https://b.example" {
		t.Fatalf("Expected the secondary's result, got %v", results)
	}
}

func TestDispatch_FallbackWhenPrimaryUnavailable(t *testing.T) {
	primary := &fakeProvider{name: "primary", available: false}
	secondary := &fakeProvider{
		name: "secondary", available: true,
		results: map[string][]model.RawResult{
			"jane doe": {{URL: "https://b.example"}},
		},
	}

	d := NewDispatcher(primary, secondary, testSearchConfig())
	results := d.Dispatch(context.Background(), []string{"jane doe"})

	if len(results) != 1 {
		t.Fatalf("Expected fallback result, got %v", results)
	}
	if len(primary.queries) != 0 {
		t.Errorf("Expected unavailable primary to be skipped, got queries %v", primary.queries)
	}
}

func TestDispatch_FailingQueryDegradesToEmpty(t *testing.T) {
	primary := &fakeProvider{name: "primary", available: true, err: fmt.Errorf("boom")}
	secondary := &fakeProvider{name: "secondary", available: true, err: fmt.Errorf("boom")}

	d := NewDispatcher(primary, secondary, testSearchConfig())
	results := d.Dispatch(context.Background(), []string{"jane doe", "jane doe acme"})

	if len(results) != 0 {
		t.Fatalf("Expected no results when every provider fails, got %v", results)
	}
}

func TestDispatch_DedupAcrossQueries(t *testing.T) {
	shared := model.RawResult{URL: "https://dup.example", Title: "First seen"}
	primary := &fakeProvider{
		name: "primary", available: true,
		results: map[string][]model.RawResult{
			"q1": {shared, {URL: "https://one.example"}},
			"q2": {{URL: "https://dup.example", Title: "Second seen"}, {URL: "https://two.example"}},
		},
	}

	d := NewDispatcher(primary, nil, testSearchConfig())
	results := d.Dispatch(context.Background(), []string{"q1", "q2"})

	if len(results) != 3 {
		t.Fatalf("Expected 3 deduplicated results, got %d", len(results))
	}
	for _, r := range results {
		if r.URL == "https://dup.example" && r.Title != "First seen" {
			t.Errorf("Expected first-seen record to win, got title %q", r.Title)
		}
	}
}

func TestDispatch_QueryCap(t *testing.T) {
	primary := &fakeProvider{name: "primary", available: true, results: map[string][]model.RawResult{}}

	d := NewDispatcher(primary, nil, testSearchConfig())
	queries := make([]string, 10)
	for i := range queries {
		queries[i] = fmt.Sprintf("q%d", i)
	}
	d.Dispatch(context.Background(), queries)

	if len(primary.queries) != MaxQueries {
		t.Errorf("Expected %d dispatched queries, got %d", MaxQueries, len(primary.queries))
	}
}

func TestDispatch_NoQueries(t *testing.T) {
	d := NewDispatcher(nil, nil, testSearchConfig())
	if got := d.Dispatch(context.Background(), nil); got != nil {
		t.Errorf("Expected nil for no queries, got %v", got)
	}
}
