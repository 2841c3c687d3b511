package analysis

import (
	"testing"

	"fxanalysis-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func performerFixture() []domain.QuoteRecord {
	return []domain.QuoteRecord{
		recChanges("USD/INR", 83.0, 0.2, 1.0),
		recChanges("EUR/USD", 1.10, 1.5, -0.5),
		recChanges("GBP/USD", 1.27, -0.8, 2.0),
		recChanges("USD/JPY", 150.0, 0.9, 0.3),
	}
}

func Test_TopPerformers_DescendingTruncated(t *testing.T) {
	t.Parallel()
	got := TopPerformers(performerFixture(), domain.MetricPercentChange, 3)

	require.Len(t, got, 3)
	require.Equal(t, "EUR/USD", got[0].PairCode)
	require.Equal(t, "USD/JPY", got[1].PairCode)
	require.Equal(t, "USD/INR", got[2].PairCode)
}

func Test_WorstPerformers_Ascending(t *testing.T) {
	t.Parallel()
	got := WorstPerformers(performerFixture(), domain.MetricPercentChange, 2)

	require.Len(t, got, 2)
	require.Equal(t, "GBP/USD", got[0].PairCode)
	require.Equal(t, "USD/INR", got[1].PairCode)
}

func Test_TopPerformers_CountBeyondDataset(t *testing.T) {
	t.Parallel()
	got := TopPerformers(performerFixture(), domain.MetricPercentChange, 50)
	require.Len(t, got, 4)
}

func Test_TopPerformers_WeeklyMetric(t *testing.T) {
	t.Parallel()
	got := TopPerformers(performerFixture(), domain.MetricWeekly, 1)

	require.Len(t, got, 1)
	require.Equal(t, "GBP/USD", got[0].PairCode)
}

func Test_TopPerformers_UnknownMetricKeepsInputOrder(t *testing.T) {
	t.Parallel()
	records := performerFixture()
	got := TopPerformers(records, "Fortnightly", len(records))

	require.Len(t, got, len(records))
	for i := range records {
		require.Equal(t, records[i].PairCode, got[i].PairCode)
	}
}

func Test_TopPerformers_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	records := performerFixture()
	first := records[0].PairCode
	_ = TopPerformers(records, domain.MetricPercentChange, len(records))

	require.Equal(t, first, records[0].PairCode)
}
