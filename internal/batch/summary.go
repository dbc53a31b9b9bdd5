package batch

import "github.com/sells-group/customs-cli/internal/model"

// Summary aggregates a batch run for reporting.
type Summary struct {
	Total          int     `json:"total"`
	High           int     `json:"high"`
	Medium         int     `json:"medium"`
	Low            int     `json:"low"`
	Improved       int     `json:"improved"`
	AvgImprovement float64 `json:"avg_improvement"`
}

// Summarize computes readiness counts (by final tier) and the average score
// delta across a run's results.
func Summarize(results []ProductResult) Summary {
	s := Summary{Total: len(results)}
	if len(results) == 0 {
		return s
	}

	var deltaSum float64
	for _, r := range results {
		switch r.FinalReadiness {
		case model.ReadinessHigh:
			s.High++
		case model.ReadinessMedium:
			s.Medium++
		default:
			s.Low++
		}
		delta := r.FinalScore - r.InitialScore
		deltaSum += delta
		if delta > 0 {
			s.Improved++
		}
	}
	s.AvgImprovement = deltaSum / float64(len(results))

	return s
}
