// Package websearch provides web search for the enrichment pipeline.
// Providers never propagate failure: any transport or parse error is the
// empty result list, so callers stay best-effort by construction.
package websearch

import (
	"context"

	"github.com/sells-group/customs-cli/internal/model"
)

// MaxResults caps the number of hits returned per query.
const MaxResults = 5

// Provider performs a web search for a query.
type Provider interface {
	// Search returns up to MaxResults ranked results. It returns an empty
	// slice on any error; it never panics or returns one.
	Search(ctx context.Context, query string) []model.SearchResult
}
