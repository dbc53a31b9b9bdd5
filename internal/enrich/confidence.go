package enrich

// Confidence contributions. Each term is capped so the total stays in
// [0,100] for any aggregation.
const (
	perSourcePoints = 15
	maxSourcePoints = 60
	structuredBonus = 20
)

// ConfidenceScore rates how trustworthy an enrichment is, from the size of
// its aggregation alone. It is independent of whether the merge actually
// changed anything.
func ConfidenceScore(agg *Aggregation) float64 {
	score := len(agg.Sources) * perSourcePoints
	if score > maxSourcePoints {
		score = maxSourcePoints
	}

	switch textLen := len(agg.CombinedText()); {
	case textLen > 1000:
		score += 20
	case textLen > 500:
		score += 15
	case textLen > 200:
		score += 10
	}

	if agg.Structured {
		score += structuredBonus
	}

	if score > 100 {
		score = 100
	}
	return float64(score)
}
