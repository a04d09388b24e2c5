package report

import "github.com/gnomegl/pwncheck/pkg/batch"

// Summarize folds per-entry records and run counters into a Summary.
func Summarize(records []batch.ResultRecord, stats batch.RunStats) Summary {
	summary := Summary{
		Total:      stats.Total,
		Errors:     stats.Errors,
		NewQueries: stats.NewQueries,
		CacheHits:  stats.CacheHits,
	}

	for _, record := range records {
		switch {
		case record.Failed():
			// Already counted in stats.Errors.
		case record.Breached():
			summary.Breached++
		default:
			summary.Safe++
		}
	}

	if stats.Total > 0 {
		summary.CacheEfficiency = float64(stats.CacheHits) / float64(stats.Total)
	}

	return summary
}
