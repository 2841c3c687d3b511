package analysis

import (
	"fxanalysis-service/internal/domain"
)

func rec(code string, price float64) domain.QuoteRecord {
	return domain.NewQuoteRecord(code, price)
}

func recChanges(code string, price, percent, weekly float64) domain.QuoteRecord {
	r := domain.NewQuoteRecord(code, price)
	r.PercentChange = percent
	r.WeeklyChange = weekly
	return r
}

// fakeRates answers rate queries from a fixed table keyed by
// "FROM/TO"; anything absent is unavailable.
type fakeRates map[string]float64

func (f fakeRates) Rate(from, to string) (float64, error) {
	if from == to {
		return 1.0, nil
	}
	if v, ok := f[from+"/"+to]; ok {
		return v, nil
	}
	return 0, domain.ErrRateUnavailable
}
