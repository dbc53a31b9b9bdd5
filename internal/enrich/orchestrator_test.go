package enrich

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/customs-cli/internal/catalog"
	"github.com/sells-group/customs-cli/internal/model"
)

// stubSearch hands out one prepared result set per call, then runs dry.
type stubSearch struct {
	queue [][]model.SearchResult
	calls int
}

func (s *stubSearch) Search(_ context.Context, _ string) []model.SearchResult {
	s.calls++
	if len(s.queue) == 0 {
		return nil
	}
	r := s.queue[0]
	s.queue = s.queue[1:]
	return r
}

type stubFetch struct {
	pages map[string]*model.PageExtract
	calls int
}

func (f *stubFetch) Fetch(_ context.Context, url string) *model.PageExtract {
	f.calls++
	return f.pages[url]
}

func testConfig() Config {
	return Config{ResultsPerQuery: 2, QueryDelay: time.Millisecond}
}

func TestEnhance_MergesCollectedText(t *testing.T) {
	search := &stubSearch{queue: [][]model.SearchResult{
		{{Title: "Spec page", URL: "http://example.com/a"}},
	}}
	fetch := &stubFetch{pages: map[string]*model.PageExtract{
		"http://example.com/a": {
			RawText:   "Samsung Galaxy S24 with 256GB storage in Black, released 2024",
			SpecTable: map[string]string{"Storage": "256GB"},
		},
	}}

	o := NewOrchestrator(search, fetch, testConfig())
	result := o.Enhance(context.Background(), "smartphone", []catalog.Category{catalog.Brand})

	require.NotNil(t, result)
	assert.Equal(t, "smartphone", result.OriginalDescription)
	assert.Equal(t, "Samsung smartphone Galaxy S24 - 256GB - Black (2024 model)", result.EnhancedDescription)
	assert.Equal(t, []string{"Spec page"}, result.SourcesUsed)
	assert.True(t, result.ReadinessImproved)

	// One source and a structured hint; the raw text is too short for a
	// length tier.
	assert.Equal(t, 35.0, result.ConfidenceScore)

	assert.Contains(t, result.Improvements, "Brand added")
	assert.Contains(t, result.Improvements, "Technical specs added")
}

func TestEnhance_NoResultsLeavesDescriptionUnchanged(t *testing.T) {
	o := NewOrchestrator(&stubSearch{}, &stubFetch{}, testConfig())
	result := o.Enhance(context.Background(), "wireless speaker", []catalog.Category{catalog.Brand, catalog.Model})

	require.NotNil(t, result)
	assert.Equal(t, "wireless speaker", result.EnhancedDescription)
	assert.Empty(t, result.SourcesUsed)
	assert.Empty(t, result.Improvements)
	assert.Equal(t, 0.0, result.ConfidenceScore)
	assert.False(t, result.ReadinessImproved)
}

func TestCollect_TruncatesToTopResults(t *testing.T) {
	search := &stubSearch{queue: [][]model.SearchResult{{
		{Title: "one", URL: "http://example.com/1"},
		{Title: "two", URL: "http://example.com/2"},
		{Title: "three", URL: "http://example.com/3"},
	}}}
	fetch := &stubFetch{pages: map[string]*model.PageExtract{
		"http://example.com/1": {RawText: "a"},
		"http://example.com/2": {RawText: "b"},
		"http://example.com/3": {RawText: "c"},
	}}

	o := NewOrchestrator(search, fetch, testConfig())
	agg := o.collect(context.Background(), []string{"query"})

	assert.Equal(t, 2, fetch.calls, "only the top results per query are fetched")
	assert.Equal(t, []string{"a", "b"}, agg.Texts)
}

func TestCollect_SkipsFailedFetches(t *testing.T) {
	search := &stubSearch{queue: [][]model.SearchResult{{
		{Title: "dead", URL: "http://example.com/dead"},
		{Title: "live", URL: "http://example.com/live"},
	}}}
	fetch := &stubFetch{pages: map[string]*model.PageExtract{
		"http://example.com/live": {RawText: "page text", Features: []string{"a feature"}},
	}}

	o := NewOrchestrator(search, fetch, testConfig())
	agg := o.collect(context.Background(), []string{"query"})

	require.Len(t, agg.Sources, 1)
	assert.Equal(t, "live", agg.Sources[0].Title)
	assert.True(t, agg.Structured)
}

func TestCollect_OneSearchPerQuery(t *testing.T) {
	search := &stubSearch{}
	o := NewOrchestrator(search, &stubFetch{}, testConfig())
	o.collect(context.Background(), []string{"a", "b", "c"})

	assert.Equal(t, 3, search.calls)
}
