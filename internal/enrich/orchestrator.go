// Package enrich drives the best-effort enhancement of low-scoring
// descriptions: bounded web searches, page fetches, token merging, and
// confidence scoring. Nothing in this package ever fails outward; the worst
// outcome is an unchanged description with zero confidence.
package enrich

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/customs-cli/internal/catalog"
	"github.com/sells-group/customs-cli/internal/classify"
	"github.com/sells-group/customs-cli/internal/model"
	"github.com/sells-group/customs-cli/pkg/pagefetch"
	"github.com/sells-group/customs-cli/pkg/websearch"
)

// Config tunes the orchestrator's external-call budget.
type Config struct {
	// ResultsPerQuery is how many top search hits are fetched per query.
	ResultsPerQuery int
	// QueryDelay is the courtesy pause between consecutive queries.
	QueryDelay time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		ResultsPerQuery: 2,
		QueryDelay:      time.Second,
	}
}

// Aggregation is the orchestrator's working set: everything collected from
// the pages behind one product's queries.
type Aggregation struct {
	Texts      []string
	Sources    []model.Source
	Structured bool
}

// CombinedText joins all collected raw text into one searchable string.
func (a *Aggregation) CombinedText() string {
	return strings.Join(a.Texts, " ")
}

// Orchestrator runs the search → fetch → merge pipeline for one product at
// a time. Strictly sequential; the only shared resource is the underlying
// HTTP session inside the collaborators.
type Orchestrator struct {
	search          websearch.Provider
	fetch           pagefetch.Fetcher
	limiter         *rate.Limiter
	resultsPerQuery int
}

// NewOrchestrator creates an Orchestrator over the given collaborators.
func NewOrchestrator(search websearch.Provider, fetch pagefetch.Fetcher, cfg Config) *Orchestrator {
	if cfg.ResultsPerQuery <= 0 {
		cfg.ResultsPerQuery = 2
	}
	if cfg.QueryDelay <= 0 {
		cfg.QueryDelay = time.Second
	}
	return &Orchestrator{
		search:          search,
		fetch:           fetch,
		limiter:         rate.NewLimiter(rate.Every(cfg.QueryDelay), 1),
		resultsPerQuery: cfg.ResultsPerQuery,
	}
}

// Enhance attempts to fill the missing categories of a description from the
// web. Partial results are acceptable: every search or fetch failure only
// shrinks the aggregation. The returned result is always well-formed.
func (o *Orchestrator) Enhance(ctx context.Context, description string, missing []catalog.Category) *model.EnrichmentResult {
	domain := classify.Classify(description)
	queries := classify.Plan(description, domain, missing)

	agg := o.collect(ctx, queries)
	allText := agg.CombinedText()

	enhanced := Merge(description, allText)

	result := &model.EnrichmentResult{
		OriginalDescription: description,
		EnhancedDescription: enhanced,
		Improvements:        trackImprovements(description, enhanced),
		ExtractedCategories: ExtractCategories(allText),
		ConfidenceScore:     ConfidenceScore(agg),
		ReadinessImproved:   wordCount(enhanced) > wordCount(description)*3/2,
	}
	for _, src := range agg.Sources {
		result.SourcesUsed = append(result.SourcesUsed, src.Title)
	}

	zap.L().Info("enrich: enhancement complete",
		zap.String("domain", string(domain)),
		zap.Int("queries", len(queries)),
		zap.Int("sources", len(agg.Sources)),
		zap.Float64("confidence", result.ConfidenceScore),
		zap.Bool("changed", enhanced != description),
	)

	return result
}

// collect runs every query in order, fetching the top results of each and
// pacing between queries. Scraping courtesy, not correctness: a failed wait
// or an empty query just moves on.
func (o *Orchestrator) collect(ctx context.Context, queries []string) *Aggregation {
	agg := &Aggregation{}

	for _, query := range queries {
		if err := o.limiter.Wait(ctx); err != nil {
			zap.L().Debug("enrich: query pacing interrupted", zap.Error(err))
		}

		results := o.search.Search(ctx, query)
		if len(results) > o.resultsPerQuery {
			results = results[:o.resultsPerQuery]
		}

		for _, r := range results {
			extract := o.fetch.Fetch(ctx, r.URL)
			if extract == nil {
				continue
			}
			agg.Texts = append(agg.Texts, extract.RawText)
			agg.Sources = append(agg.Sources, model.Source{Title: r.Title, URL: r.URL})
			if extract.HasStructured() {
				agg.Structured = true
			}
		}
	}

	return agg
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
