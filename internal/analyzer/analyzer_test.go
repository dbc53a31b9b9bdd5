package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/customs-cli/internal/catalog"
	"github.com/sells-group/customs-cli/internal/model"
)

func TestAnalyze_ShortInput(t *testing.T) {
	an := New()

	for _, desc := range []string{"", "hi", "   ab  "} {
		report := an.Analyze(desc)
		assert.Zero(t, report.Score, "description %q", desc)
		assert.Equal(t, model.ReadinessLow, report.Readiness)
		assert.True(t, report.NeedsEnhancement)
		assert.Equal(t, []catalog.Category{catalog.MissingTooShort}, report.Missing)
		assert.Len(t, report.Recommendations, 1)
		assert.Empty(t, report.Found)
	}
}

func TestAnalyze_CompletePhone(t *testing.T) {
	report := New().Analyze("Apple iPhone 15 Pro 256GB Black 2024")

	assert.Contains(t, report.Found, catalog.Brand)
	assert.Contains(t, report.Found, catalog.Model)
	assert.Contains(t, report.Found, catalog.TechnicalSpecs)
	assert.Contains(t, report.Found, catalog.PhysicalAttributes)
	assert.Contains(t, report.Found, catalog.YearModel)
	assert.Contains(t, report.Missing, catalog.CategoryIdentifiers,
		"no product-type noun present")

	// 25+20+30+15+10 = 100 of 120.
	assert.InDelta(t, 100.0/120.0*100, report.Score, 0.01)
	assert.Equal(t, model.ReadinessHigh, report.Readiness)
	assert.False(t, report.NeedsEnhancement,
		"gating is weight-based, not count-based: one missing category can still be HIGH")
}

func TestAnalyze_CarWithoutSpecs(t *testing.T) {
	report := New().Analyze("BMW X5 xDrive40i 2024 Black")

	assert.Contains(t, report.Found, catalog.Brand)
	assert.Contains(t, report.Found, catalog.Model, "generic two-token fallback")
	assert.Contains(t, report.Found, catalog.PhysicalAttributes)
	assert.Contains(t, report.Found, catalog.YearModel)
	assert.Contains(t, report.Missing, catalog.TechnicalSpecs)
	assert.Contains(t, report.Missing, catalog.CategoryIdentifiers)

	// 25+20+15+10 = 70 of 120.
	assert.InDelta(t, 70.0/120.0*100, report.Score, 0.01)
	assert.Equal(t, model.ReadinessLow, report.Readiness)
	assert.True(t, report.NeedsEnhancement)
}

func TestAnalyze_ScoreFormula(t *testing.T) {
	an := New()

	for _, desc := range []string{
		"wireless headphones",
		"Samsung Galaxy S24 Ultra smartphone",
		"cotton t-shirt blue size large",
		"stainless steel water bottle 750ml",
	} {
		report := an.Analyze(desc)

		achieved := 0
		for c := range report.Found {
			achieved += catalog.Weight(c)
		}
		want := float64(achieved) / float64(catalog.TotalWeight) * 100

		assert.InDelta(t, want, report.Score, 0.0001, "description %q", desc)
		assert.GreaterOrEqual(t, report.Score, 0.0)
		assert.LessOrEqual(t, report.Score, 100.0)
	}
}

func TestAnalyze_FoundMissingPartition(t *testing.T) {
	report := New().Analyze("Samsung Galaxy S24 Ultra smartphone")

	assert.Equal(t, len(catalog.Categories), len(report.Found)+len(report.Missing),
		"found and missing must partition the category set")
	for _, c := range report.Missing {
		assert.NotContains(t, report.Found, c)
	}
	assert.Len(t, report.Recommendations, len(report.Missing),
		"one fixed advisory per missing category")
}

func TestAnalyze_Monotonicity(t *testing.T) {
	an := New()

	base := "wireless speaker 2021"
	richer := base + " samsung 40W"

	a := an.Analyze(base)
	b := an.Analyze(richer)

	assert.GreaterOrEqual(t, b.Score, a.Score)
	for c := range a.Found {
		assert.Contains(t, b.Found, c, "appending tokens must not lose categories")
	}
}

func TestReadinessThresholds(t *testing.T) {
	assert.Equal(t, model.ReadinessHigh, model.ReadinessFor(80))
	assert.Equal(t, model.ReadinessMedium, model.ReadinessFor(math.Nextafter(80, 0)))
	assert.Equal(t, model.ReadinessMedium, model.ReadinessFor(60))
	assert.Equal(t, model.ReadinessLow, model.ReadinessFor(math.Nextafter(60, 0)))
	assert.Equal(t, model.ReadinessLow, model.ReadinessFor(0))
	assert.Equal(t, model.ReadinessHigh, model.ReadinessFor(100))
}

func TestAnalyze_RecordsMatchedSubstrings(t *testing.T) {
	report := New().Analyze("Apple iPhone 15 Pro 256GB Black 2024")

	require.Contains(t, report.Found, catalog.Brand)
	found := false
	for _, m := range report.Found[catalog.Brand] {
		if m == "Apple" {
			found = true
		}
	}
	assert.True(t, found, "matched substrings are recorded verbatim")
}
