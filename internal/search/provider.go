// Package search provides the web search providers and the concurrent query
// dispatcher that fans resolution queries out across them.
package search

import (
	"context"

	"github.com/osintlab/namesake/internal/model"
)

// Provider is a single search backend. Implementations return at most limit
// results; a failing backend returns an error which the dispatcher absorbs
// into an empty result list.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Search runs one query and returns raw results.
	Search(ctx context.Context, query string, limit int) ([]model.RawResult, error)

	// Available reports whether the provider is configured for use.
	Available() bool
}
