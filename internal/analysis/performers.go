package analysis

import (
	"sort"

	"fxanalysis-service/internal/domain"
)

// TopPerformers returns up to count records sorted descending by the
// named metric. Unrecognized metrics rank every record at 0.0, and the
// stable sort keeps the input order intact. Counts beyond the dataset
// return the whole dataset.
func TopPerformers(records []domain.QuoteRecord, metric string, count int) []domain.QuoteRecord {
	return rankedByMetric(records, metric, count, func(a, b float64) bool { return a > b })
}

// WorstPerformers is the ascending dual of TopPerformers.
func WorstPerformers(records []domain.QuoteRecord, metric string, count int) []domain.QuoteRecord {
	return rankedByMetric(records, metric, count, func(a, b float64) bool { return a < b })
}

func rankedByMetric(records []domain.QuoteRecord, metric string, count int, less func(a, b float64) bool) []domain.QuoteRecord {
	sorted := make([]domain.QuoteRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i].ChangeByMetric(metric), sorted[j].ChangeByMetric(metric))
	})
	if count < 0 {
		count = 0
	}
	if count > len(sorted) {
		count = len(sorted)
	}
	return sorted[:count]
}
