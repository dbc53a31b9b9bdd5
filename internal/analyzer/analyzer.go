// Package analyzer scores product descriptions against the category catalog
// and produces completeness reports with readiness tiers.
package analyzer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/customs-cli/internal/catalog"
	"github.com/sells-group/customs-cli/internal/model"
)

// minLength is the shortest trimmed description worth analyzing.
const minLength = 5

// Analyzer computes completeness reports. Stateless; safe to share.
type Analyzer struct{}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze grades a description against every category in the catalog.
// It never fails: absence of matches is a normal outcome, and defective
// input yields a LOW-readiness report rather than an error.
func (a *Analyzer) Analyze(description string) *model.CompletenessReport {
	report := &model.CompletenessReport{
		Description:      description,
		Found:            make(map[catalog.Category][]string),
		NeedsEnhancement: true,
		Readiness:        model.ReadinessLow,
	}

	if len(strings.TrimSpace(description)) < minLength {
		report.Missing = []catalog.Category{catalog.MissingTooShort}
		report.Recommendations = []string{"Provide a detailed product description"}
		return report
	}

	achieved := 0
	for _, cat := range catalog.Categories {
		spec, _ := catalog.Lookup(cat)

		var matches []string
		for _, rule := range spec.Rules {
			matches = append(matches, rule.FindAllString(description, -1)...)
		}

		if len(matches) > 0 {
			achieved += spec.Weight
			report.Found[cat] = matches
		} else {
			report.Missing = append(report.Missing, cat)
		}
	}

	report.Score = float64(achieved) / float64(catalog.TotalWeight) * 100
	report.Readiness = model.ReadinessFor(report.Score)
	report.NeedsEnhancement = report.Readiness != model.ReadinessHigh

	for _, cat := range report.Missing {
		if spec, ok := catalog.Lookup(cat); ok {
			report.Recommendations = append(report.Recommendations, spec.Advice)
		}
	}

	zap.L().Debug("analyzer: scored description",
		zap.Float64("score", report.Score),
		zap.String("readiness", string(report.Readiness)),
		zap.Int("missing", len(report.Missing)),
	)

	return report
}
