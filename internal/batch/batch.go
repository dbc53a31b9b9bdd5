// Package batch drives the per-record analyze → enhance → re-analyze
// pipeline over CSV input. It sits outside the core: it only ever calls the
// two core entry points and owns all per-run bookkeeping.
package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/customs-cli/internal/analyzer"
	"github.com/sells-group/customs-cli/internal/catalog"
	"github.com/sells-group/customs-cli/internal/model"
)

// maxRecommendations caps how many advisories a result row carries.
const maxRecommendations = 3

// Record is one input row: a unique identifier and a non-empty description.
type Record struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// ProductResult is one output row of a batch run.
type ProductResult struct {
	ID               string             `json:"id"`
	Original         string             `json:"original_description"`
	InitialScore     float64            `json:"initial_score"`
	InitialReadiness model.Readiness    `json:"initial_readiness"`
	Found            []catalog.Category `json:"found"`
	Missing          []catalog.Category `json:"missing"`
	Enhanced         string             `json:"enhanced_description"`
	Improvements     []string           `json:"improvements,omitempty"`
	FinalScore       float64            `json:"final_score"`
	FinalReadiness   model.Readiness    `json:"final_readiness"`
	SourceCount      int                `json:"source_count"`
	Confidence       float64            `json:"confidence"`
	Recommendations  []string           `json:"recommendations,omitempty"`
	// Annotation records a per-product extraction fault. The row is still
	// emitted; faults never stop the batch.
	Annotation string `json:"annotation,omitempty"`
}

// Enhancer is the enhancement entry point the processor drives.
type Enhancer interface {
	Enhance(ctx context.Context, description string, missing []catalog.Category) *model.EnrichmentResult
}

// Processor runs records through the pipeline one at a time, with a fixed
// courtesy delay between items. A nil enhancer analyzes only.
type Processor struct {
	analyzer *analyzer.Analyzer
	enhancer Enhancer
	limiter  *rate.Limiter
}

// NewProcessor creates a Processor. itemDelay is the pause between records.
func NewProcessor(an *analyzer.Analyzer, en Enhancer, itemDelay time.Duration) *Processor {
	if itemDelay <= 0 {
		itemDelay = 500 * time.Millisecond
	}
	return &Processor{
		analyzer: an,
		enhancer: en,
		limiter:  rate.NewLimiter(rate.Every(itemDelay), 1),
	}
}

// Process handles every record fully before starting the next. It always
// returns one result per input record.
func (p *Processor) Process(ctx context.Context, records []Record) []ProductResult {
	results := make([]ProductResult, 0, len(records))
	for i, rec := range records {
		if err := p.limiter.Wait(ctx); err != nil {
			zap.L().Debug("batch: item pacing interrupted", zap.Error(err))
		}
		results = append(results, p.processOne(ctx, rec))
		zap.L().Info("batch: record processed",
			zap.String("id", rec.ID),
			zap.Int("done", i+1),
			zap.Int("total", len(records)),
		)
	}
	return results
}

func (p *Processor) processOne(ctx context.Context, rec Record) ProductResult {
	report := p.analyzer.Analyze(rec.Description)

	result := ProductResult{
		ID:               rec.ID,
		Original:         rec.Description,
		InitialScore:     report.Score,
		InitialReadiness: report.Readiness,
		Found:            foundOrder(report),
		Missing:          report.Missing,
		Enhanced:         rec.Description,
		FinalScore:       report.Score,
		FinalReadiness:   report.Readiness,
		Recommendations:  capStrings(report.Recommendations, maxRecommendations),
	}

	if !report.NeedsEnhancement || p.enhancer == nil {
		return result
	}

	// Per-product fault boundary: an extraction pass blowing up on unusual
	// text annotates this row and moves on.
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Annotation = fmt.Sprintf("extraction fault: %v", r)
				zap.L().Error("batch: extraction fault",
					zap.String("id", rec.ID),
					zap.Any("fault", r),
				)
			}
		}()

		enr := p.enhancer.Enhance(ctx, rec.Description, report.Missing)
		result.Enhanced = enr.EnhancedDescription
		result.Improvements = enr.Improvements
		result.SourceCount = len(enr.SourcesUsed)
		result.Confidence = enr.ConfidenceScore

		rescored := p.analyzer.Analyze(enr.EnhancedDescription)
		result.FinalScore = rescored.Score
		result.FinalReadiness = rescored.Readiness
	}()

	return result
}

// foundOrder lists found categories in catalog order, not map order.
func foundOrder(report *model.CompletenessReport) []catalog.Category {
	var found []catalog.Category
	for _, c := range catalog.Categories {
		if _, ok := report.Found[c]; ok {
			found = append(found, c)
		}
	}
	return found
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// ParseCSV reads and validates the batch input file. The header must carry
// "id" and "description" columns (any casing); ids must be unique and every
// description non-empty.
func ParseCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "batch: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "batch: read csv")
	}
	if len(rows) < 2 {
		return nil, eris.New("batch: csv has no data rows")
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range []string{"id", "description"} {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Errorf("batch: missing required column %q", col)
		}
	}

	seen := make(map[string]bool)
	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		id := strings.TrimSpace(row[colIdx["id"]])
		desc := strings.TrimSpace(row[colIdx["description"]])

		if id == "" {
			return nil, eris.Errorf("batch: empty id at row %d", i+2)
		}
		if seen[id] {
			return nil, eris.Errorf("batch: duplicate id %q at row %d", id, i+2)
		}
		seen[id] = true

		if desc == "" {
			return nil, eris.Errorf("batch: empty description for id %q", id)
		}

		records = append(records, Record{ID: id, Description: desc})
	}

	return records, nil
}

// WriteCSV writes result rows in the batch output shape.
func WriteCSV(results []ProductResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "batch: create output csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "original_description", "initial_score", "initial_readiness",
		"found", "missing", "enhanced_description", "improvements",
		"final_score", "final_readiness", "sources", "confidence",
		"recommendations", "notes",
	}
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "batch: write header")
	}

	for _, r := range results {
		row := []string{
			r.ID,
			r.Original,
			fmt.Sprintf("%.1f", r.InitialScore),
			string(r.InitialReadiness),
			joinCategories(r.Found),
			joinCategories(r.Missing),
			r.Enhanced,
			strings.Join(r.Improvements, "; "),
			fmt.Sprintf("%.1f", r.FinalScore),
			string(r.FinalReadiness),
			fmt.Sprintf("%d", r.SourceCount),
			fmt.Sprintf("%.1f", r.Confidence),
			strings.Join(r.Recommendations, "; "),
			r.Annotation,
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "batch: write row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "batch: flush output csv")
	}
	return nil
}

func joinCategories(cats []catalog.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
