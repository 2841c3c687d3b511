package analysis

import "fmt"

// Opportunity is a profitable triangular cycle A→B→C→A.
type Opportunity struct {
	From          string
	Via           string
	To            string
	ProfitPercent float64
}

// Cycle renders the path, e.g. "EUR→GBP→JPY→EUR".
func (o Opportunity) Cycle() string {
	return fmt.Sprintf("%s→%s→%s→%s", o.From, o.Via, o.To, o.From)
}

func (o Opportunity) String() string {
	return fmt.Sprintf("Arbitrage Opportunity: %s (%.2f%% potential)", o.Cycle(), o.ProfitPercent)
}

// ArbitrageSearcher enumerates ordered triples of distinct currencies
// and compounds the three legs through the lookup service. The search
// is O(n^3) over the currency universe; MaxTriples caps the number of
// triples visited (0 means unlimited). Rotations of the same physical
// cycle are visited and reported separately; the reverse direction is
// a different set of triples and is not folded in.
type ArbitrageSearcher struct {
	MinProfitPercent float64
	MaxTriples       int
}

const DefaultArbitrageMinProfit = 1.0

func NewArbitrageSearcher(minProfit float64, maxTriples int) ArbitrageSearcher {
	if minProfit <= 0 {
		minProfit = DefaultArbitrageMinProfit
	}
	return ArbitrageSearcher{MinProfitPercent: minProfit, MaxTriples: maxTriples}
}

// FindCycles reports every ordered triple whose compounded rate
// product exceeds the profit threshold. Triples with an unavailable or
// non-positive leg are skipped, never treated as zero.
func (s ArbitrageSearcher) FindCycles(currencies []string, rate RateFunc) []Opportunity {
	var out []Opportunity
	visited := 0
	for _, a := range currencies {
		for _, b := range currencies {
			if a == b {
				continue
			}
			for _, c := range currencies {
				if a == c || b == c {
					continue
				}
				if s.MaxTriples > 0 && visited >= s.MaxTriples {
					return out
				}
				visited++

				rateAB, err := rate(a, b)
				if err != nil || rateAB <= 0 {
					continue
				}
				rateBC, err := rate(b, c)
				if err != nil || rateBC <= 0 {
					continue
				}
				rateCA, err := rate(c, a)
				if err != nil || rateCA <= 0 {
					continue
				}

				profit := (rateAB*rateBC*rateCA - 1.0) * 100
				if profit > s.MinProfitPercent {
					out = append(out, Opportunity{From: a, Via: b, To: c, ProfitPercent: profit})
				}
			}
		}
	}
	return out
}
