package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalWeight(t *testing.T) {
	assert.Equal(t, 120, TotalWeight)

	sum := 0
	for _, c := range Categories {
		sum += Weight(c)
	}
	assert.Equal(t, TotalWeight, sum, "category weights must sum to the total")
}

func TestLookup_AllCategoriesDefined(t *testing.T) {
	for _, c := range Categories {
		spec, ok := Lookup(c)
		require.True(t, ok, "category %s must have a spec", c)
		assert.NotEmpty(t, spec.Rules, "category %s must have rules", c)
		assert.NotEmpty(t, spec.Advice, "category %s must have advice", c)
		assert.Positive(t, spec.Weight)
	}
}

func TestLookup_Weights(t *testing.T) {
	assert.Equal(t, 25, Weight(Brand))
	assert.Equal(t, 20, Weight(Model))
	assert.Equal(t, 30, Weight(TechnicalSpecs))
	assert.Equal(t, 15, Weight(PhysicalAttributes))
	assert.Equal(t, 20, Weight(CategoryIdentifiers))
	assert.Equal(t, 10, Weight(YearModel))
}

func TestLookup_UnknownCategory(t *testing.T) {
	_, ok := Lookup(MissingTooShort)
	assert.False(t, ok, "the sentinel is not a real category")
	assert.Equal(t, 0, Weight(Category("nonsense")))
}

func TestBrandRules(t *testing.T) {
	spec, _ := Lookup(Brand)

	// Lexicon rule is case-insensitive.
	assert.True(t, spec.Rules[0].MatchString("refurbished SAMSUNG unit"))
	assert.False(t, spec.Rules[0].MatchString("generic unbranded unit"))

	// Fallback matches any capitalized word sequence, case-sensitively.
	assert.True(t, spec.Rules[1].MatchString("Acme Widget"))
	assert.False(t, spec.Rules[1].MatchString("acme widget"))
}

func TestTechnicalSpecRules(t *testing.T) {
	spec, _ := Lookup(TechnicalSpecs)

	for _, sample := range []string{"256GB storage", "6.7 inch display", "48MP camera", "5000mAh", "120Hz", "8 cores", "4K", "WiFi", "Android 14", "AMOLED"} {
		matched := false
		for _, rule := range spec.Rules {
			if rule.MatchString(sample) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "expected a technical_specs rule to match %q", sample)
	}
}

func TestYearModelRules(t *testing.T) {
	spec, _ := Lookup(YearModel)

	match := func(s string) bool {
		for _, rule := range spec.Rules {
			if rule.MatchString(s) {
				return true
			}
		}
		return false
	}

	assert.True(t, match("2024 model"))
	assert.True(t, match("model 2021"))
	assert.True(t, match("generation 5"))
	assert.True(t, match("3rd gen"))
	assert.False(t, match("1999 vintage"), "years outside 2000-2099 do not count")
}

func TestRuleIndependence(t *testing.T) {
	// Matching one category's rules must not depend on another category's
	// outcome: evaluate in both orders and compare.
	desc := "Apple iPhone 15 Pro 256GB Black 2024"

	forward := make(map[Category]bool)
	for _, c := range Categories {
		spec, _ := Lookup(c)
		for _, rule := range spec.Rules {
			if rule.MatchString(desc) {
				forward[c] = true
				break
			}
		}
	}

	backward := make(map[Category]bool)
	for i := len(Categories) - 1; i >= 0; i-- {
		c := Categories[i]
		spec, _ := Lookup(c)
		for _, rule := range spec.Rules {
			if rule.MatchString(desc) {
				backward[c] = true
				break
			}
		}
	}

	assert.Equal(t, forward, backward)
}
