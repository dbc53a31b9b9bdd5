package model

import "github.com/sells-group/customs-cli/internal/catalog"

// Readiness classifies how fit a description is for HS code assignment.
type Readiness string

const (
	ReadinessLow    Readiness = "LOW"
	ReadinessMedium Readiness = "MEDIUM"
	ReadinessHigh   Readiness = "HIGH"
)

// ReadinessFor maps a completeness score to its readiness tier.
func ReadinessFor(score float64) Readiness {
	switch {
	case score >= 80:
		return ReadinessHigh
	case score >= 60:
		return ReadinessMedium
	default:
		return ReadinessLow
	}
}

// CompletenessReport is the result of analyzing a single description.
// Found and Missing partition the fixed category set: a category appears in
// exactly one of them (except for the too-short sentinel, which replaces the
// whole set).
type CompletenessReport struct {
	Description      string                          `json:"description"`
	Score            float64                         `json:"score"`
	Found            map[catalog.Category][]string   `json:"found"`
	Missing          []catalog.Category              `json:"missing"`
	Readiness        Readiness                       `json:"readiness"`
	NeedsEnhancement bool                            `json:"needs_enhancement"`
	Recommendations  []string                        `json:"recommendations"`
}

// MissingSet returns the missing categories as a lookup set.
func (r *CompletenessReport) MissingSet() map[catalog.Category]bool {
	set := make(map[catalog.Category]bool, len(r.Missing))
	for _, c := range r.Missing {
		set[c] = true
	}
	return set
}
