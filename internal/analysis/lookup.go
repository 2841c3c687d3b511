package analysis

import (
	"fmt"

	"fxanalysis-service/internal/domain"
)

// RateFunc answers a point-to-point rate query. Implementations return
// domain.ErrRateUnavailable when no conversion path exists.
type RateFunc func(from, to string) (float64, error)

// RateLookupService resolves a (from,to) rate in a fixed precedence
// order: identity, exact observed pair, inverse observed pair, then a
// cross rate derived through the USD table.
type RateLookupService struct {
	direct map[string]float64
	table  RateTable
}

// NewRateLookupService indexes the records by pair code. When the same
// code appears more than once, the first usable observation wins,
// consistent with the resolver's conflict policy.
func NewRateLookupService(records []domain.QuoteRecord, table RateTable) *RateLookupService {
	direct := make(map[string]float64, len(records))
	for _, rec := range records {
		if !rec.Usable() {
			continue
		}
		if _, ok := direct[rec.PairCode]; !ok {
			direct[rec.PairCode] = rec.Price
		}
	}
	return &RateLookupService{direct: direct, table: table}
}

// Rate returns the conversion rate from one currency to another, or
// domain.ErrRateUnavailable when neither an observed pair nor a
// derived path exists. It never signals failure through a zero value.
func (s *RateLookupService) Rate(from, to string) (float64, error) {
	if from == to {
		return 1.0, nil
	}
	if price, ok := s.direct[domain.MakePair(from, to)]; ok {
		return price, nil
	}
	if price, ok := s.direct[domain.MakePair(to, from)]; ok {
		return 1.0 / price, nil
	}
	perFrom, okFrom := s.table[from]
	perTo, okTo := s.table[to]
	if okFrom && okTo && perFrom > 0 {
		return perTo / perFrom, nil
	}
	return 0, fmt.Errorf("%s to %s: %w", from, to, domain.ErrRateUnavailable)
}
