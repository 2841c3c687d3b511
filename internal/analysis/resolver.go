package analysis

import (
	"sync"

	"fxanalysis-service/internal/domain"
)

// Numeraire is the common denominator for all derived rates.
const Numeraire = "USD"

// RateTable maps a currency code to units of that currency per one
// USD, so table[to]/table[from] is the from→to cross rate. The
// numeraire entry is always 1.0.
type RateTable map[string]float64

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// ConflictPolicy decides which value an entry keeps when a second
// observation implies a different rate for an already-known currency.
type ConflictPolicy func(existing, candidate float64) float64

// FirstWriteWins keeps the first assigned rate and skips later
// derivations for the same currency. This is the default.
func FirstWriteWins(existing, _ float64) float64 { return existing }

// LastWriteWins takes the newest observation instead.
func LastWriteWins(_, candidate float64) float64 { return candidate }

// RateGraphResolver derives a complete currency-to-USD table from a
// sparse set of observed pairs. The pair graph is closed over with a
// worklist: whenever exactly one endpoint of a usable record is known,
// the other is derived and queued. Iterations are bounded by the size
// of the currency universe; entries never decrease.
//
// Safe for concurrent use: each Build works on a fresh table and only
// the cached copy behind RateOf is shared.
type RateGraphResolver struct {
	policy ConflictPolicy

	mu    sync.RWMutex
	table RateTable
}

type ResolverOption func(*RateGraphResolver)

func WithConflictPolicy(p ConflictPolicy) ResolverOption {
	return func(r *RateGraphResolver) { r.policy = p }
}

func NewRateGraphResolver(opts ...ResolverOption) *RateGraphResolver {
	r := &RateGraphResolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.policy == nil {
		r.policy = FirstWriteWins
	}
	return r
}

// Build computes a fresh table from the records. Records with a
// non-positive price or an unparsable pair code never participate.
// The numeraire entry is forced to 1.0 and is never overwritten.
func (r *RateGraphResolver) Build(records []domain.QuoteRecord) RateTable {
	table := RateTable{}

	set := func(code string, rate float64) bool {
		if code == Numeraire {
			return false
		}
		if existing, ok := table[code]; ok {
			table[code] = r.policy(existing, rate)
			return false
		}
		table[code] = rate
		return true
	}

	// Seed from USD-anchored observations, in record order.
	for _, rec := range records {
		if !rec.Usable() {
			continue
		}
		switch {
		case rec.Base == Numeraire:
			set(rec.Quote, rec.Price)
		case rec.Quote == Numeraire:
			set(rec.Base, 1.0/rec.Price)
		}
	}
	table[Numeraire] = 1.0

	// Index usable records by both endpoints for the closure walk.
	byCurrency := map[string][]domain.QuoteRecord{}
	for _, rec := range records {
		if !rec.Usable() {
			continue
		}
		byCurrency[rec.Base] = append(byCurrency[rec.Base], rec)
		byCurrency[rec.Quote] = append(byCurrency[rec.Quote], rec)
	}

	queue := make([]string, 0, len(table))
	for code := range table {
		queue = append(queue, code)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		rate := table[cur]
		for _, rec := range byCurrency[cur] {
			if cur == rec.Base {
				if set(rec.Quote, rate*rec.Price) {
					queue = append(queue, rec.Quote)
				}
			} else {
				if set(rec.Base, rate/rec.Price) {
					queue = append(queue, rec.Base)
				}
			}
		}
	}

	r.mu.Lock()
	r.table = table
	r.mu.Unlock()
	return table
}

// RateOf reports a currency's per-USD rate from the last build.
// Currencies unreachable from USD are absent, not zero.
func (r *RateGraphResolver) RateOf(code string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.table[code]
	return v, ok
}
