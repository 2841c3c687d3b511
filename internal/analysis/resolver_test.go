package analysis

import (
	"sync"
	"testing"

	"fxanalysis-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_Build_SeedsFromUSDAnchors(t *testing.T) {
	t.Parallel()
	r := NewRateGraphResolver()
	table := r.Build([]domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("EUR/USD", 1.10),
	})

	require.Equal(t, 1.0, table[Numeraire])
	require.InDelta(t, 83.0, table["INR"], 1e-9)
	require.InDelta(t, 1.0/1.10, table["EUR"], 1e-9)
}

func Test_Build_PropagatesThroughIntermediates(t *testing.T) {
	t.Parallel()
	r := NewRateGraphResolver()
	// JPY is only reachable via INR, and KRW only via JPY.
	table := r.Build([]domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("INR/JPY", 1.8),
		rec("JPY/KRW", 9.0),
	})

	require.InDelta(t, 83.0*1.8, table["JPY"], 1e-9)
	require.InDelta(t, 83.0*1.8*9.0, table["KRW"], 1e-9)
}

func Test_Build_InverseLegPropagation(t *testing.T) {
	t.Parallel()
	r := NewRateGraphResolver()
	// GBP appears only as the base of a pair whose quote is known.
	table := r.Build([]domain.QuoteRecord{
		rec("USD/CHF", 0.9),
		rec("GBP/CHF", 1.2),
	})

	require.InDelta(t, 0.9/1.2, table["GBP"], 1e-9)
}

func Test_Build_UnreachableCurrencyAbsent(t *testing.T) {
	t.Parallel()
	r := NewRateGraphResolver()
	table := r.Build([]domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("SEK/NOK", 0.95), // disconnected from USD
	})

	_, ok := table["SEK"]
	require.False(t, ok)
	_, ok = table["NOK"]
	require.False(t, ok)
	_, ok = r.RateOf("SEK")
	require.False(t, ok)
}

func Test_Build_SkipsNonPositivePrices(t *testing.T) {
	t.Parallel()
	r := NewRateGraphResolver()
	table := r.Build([]domain.QuoteRecord{
		rec("USD/XAU", 0.0),
		rec("USD/INR", 83.0),
	})

	_, ok := table["XAU"]
	require.False(t, ok)
	require.InDelta(t, 83.0, table["INR"], 1e-9)
}

func Test_Build_USDForcedToOne(t *testing.T) {
	t.Parallel()
	r := NewRateGraphResolver()
	// A self-referencing USD observation must not displace the anchor.
	table := r.Build([]domain.QuoteRecord{
		rec("USD/USD", 2.0),
		rec("USD/INR", 83.0),
	})

	require.Equal(t, 1.0, table[Numeraire])
}

func Test_Build_FirstWriteWinsOnConflict(t *testing.T) {
	t.Parallel()
	r := NewRateGraphResolver()
	table := r.Build([]domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("USD/INR", 84.5), // conflicting later observation
	})

	require.InDelta(t, 83.0, table["INR"], 1e-9)
}

func Test_Build_LastWriteWinsPolicy(t *testing.T) {
	t.Parallel()
	r := NewRateGraphResolver(WithConflictPolicy(LastWriteWins))
	table := r.Build([]domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("USD/INR", 84.5),
	})

	require.InDelta(t, 84.5, table["INR"], 1e-9)
}

func Test_Build_ConcurrentRebuilds(t *testing.T) {
	t.Parallel()
	records := []domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("EUR/USD", 1.10),
		rec("INR/JPY", 1.8),
	}
	r := NewRateGraphResolver()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Build(records)
		}()
	}
	wg.Wait()

	got, ok := r.RateOf("INR")
	require.True(t, ok)
	require.InDelta(t, 83.0, got, 1e-9)
}

func Test_Build_Idempotent(t *testing.T) {
	t.Parallel()
	records := []domain.QuoteRecord{
		rec("USD/INR", 83.0),
		rec("EUR/USD", 1.10),
		rec("INR/JPY", 1.8),
	}
	r := NewRateGraphResolver()
	first := r.Build(records)
	second := r.Build(records)

	require.Equal(t, first, second)
}
