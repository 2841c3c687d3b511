package analysis

import (
	"testing"

	"fxanalysis-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func newLookup(records []domain.QuoteRecord) *RateLookupService {
	table := NewRateGraphResolver().Build(records)
	return NewRateLookupService(records, table)
}

func Test_Rate_Identity(t *testing.T) {
	t.Parallel()
	s := newLookup([]domain.QuoteRecord{rec("USD/INR", 83.0)})

	got, err := s.Rate("EUR", "EUR")
	require.NoError(t, err)
	require.Equal(t, 1.0, got)
}

func Test_Rate_DirectPair(t *testing.T) {
	t.Parallel()
	s := newLookup([]domain.QuoteRecord{rec("USD/JPY", 150.0)})

	got, err := s.Rate("USD", "JPY")
	require.NoError(t, err)
	require.InDelta(t, 150.0, got, 1e-9)
}

func Test_Rate_InversePair(t *testing.T) {
	t.Parallel()
	s := newLookup([]domain.QuoteRecord{rec("USD/JPY", 150.0)})

	got, err := s.Rate("JPY", "USD")
	require.NoError(t, err)
	require.InDelta(t, 1.0/150.0, got, 1e-9)
}

func Test_Rate_DirectBeatsDerived(t *testing.T) {
	t.Parallel()
	// The observed EUR/INR pair disagrees with the derived cross rate;
	// the direct observation wins.
	s := newLookup([]domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("EUR/USD", 1.10),
		rec("EUR/INR", 90.0),
	})

	got, err := s.Rate("EUR", "INR")
	require.NoError(t, err)
	require.InDelta(t, 90.0, got, 1e-9)
}

func Test_Rate_DerivedCrossRate(t *testing.T) {
	t.Parallel()
	s := newLookup([]domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("EUR/USD", 1.10),
	})

	got, err := s.Rate("EUR", "INR")
	require.NoError(t, err)
	require.InDelta(t, 91.3, got, 0.01)
}

func Test_Rate_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newLookup([]domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("EUR/USD", 1.10),
		rec("INR/JPY", 1.8),
	})

	ab, err := s.Rate("EUR", "JPY")
	require.NoError(t, err)
	ba, err := s.Rate("JPY", "EUR")
	require.NoError(t, err)
	require.InDelta(t, 1.0, ab*ba, 1e-9)
}

func Test_Rate_Unavailable(t *testing.T) {
	t.Parallel()
	s := newLookup([]domain.QuoteRecord{rec("USD/INR", 83.0)})

	_, err := s.Rate("SEK", "NOK")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func Test_Rate_ZeroPriceRecordUnusable(t *testing.T) {
	t.Parallel()
	s := newLookup([]domain.QuoteRecord{rec("USD/XAU", 0.0)})

	_, err := s.Rate("USD", "XAU")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func Test_Rate_FirstDirectObservationWins(t *testing.T) {
	t.Parallel()
	s := newLookup([]domain.QuoteRecord{
		rec("USD/JPY", 150.0),
		rec("USD/JPY", 151.0),
	})

	got, err := s.Rate("USD", "JPY")
	require.NoError(t, err)
	require.InDelta(t, 150.0, got, 1e-9)
}
