package domain

import "fmt"

// Metric names accepted by performer ranking. They mirror the field
// names of the upstream snapshot files.
const (
	MetricPercentChange = "Percent Change"
	MetricWeekly        = "Weekly"
	MetricMonthly       = "Monthly"
	MetricYTD           = "YTD"
	MetricYoY           = "YoY"
)

// QuoteRecord is one currency pair observation from a snapshot.
// Records are immutable after load; change fields are percentages
// except DayChange, which is an absolute price delta.
type QuoteRecord struct {
	PairCode string
	Base     string
	Quote    string

	Price         float64
	DayChange     float64
	PercentChange float64
	WeeklyChange  float64
	MonthlyChange float64
	YTDChange     float64
	YoYChange     float64

	Group     string
	Timestamp string
}

// NewQuoteRecord derives the base and quote legs from the pair code.
func NewQuoteRecord(code string, price float64) QuoteRecord {
	base, quote := SplitPair(code)
	return QuoteRecord{PairCode: code, Base: base, Quote: quote, Price: price}
}

// Usable reports whether the record can participate in rate math.
// A non-positive price or an unparsable pair code disqualifies it.
func (r QuoteRecord) Usable() bool {
	return r.Price > 0 && r.Base != "" && r.Quote != ""
}

// ChangeByMetric returns the change value for a named metric.
// Unrecognized metrics yield 0.0, which makes ranking a stable no-op.
func (r QuoteRecord) ChangeByMetric(metric string) float64 {
	switch metric {
	case MetricPercentChange:
		return r.PercentChange
	case MetricWeekly:
		return r.WeeklyChange
	case MetricMonthly:
		return r.MonthlyChange
	case MetricYTD:
		return r.YTDChange
	case MetricYoY:
		return r.YoYChange
	default:
		return 0.0
	}
}

func (r QuoteRecord) String() string {
	if r.PercentChange != 0 {
		return fmt.Sprintf("%s: %.4f (%+.2f%%)", r.PairCode, r.Price, r.PercentChange)
	}
	return fmt.Sprintf("%s: %.4f", r.PairCode, r.Price)
}
