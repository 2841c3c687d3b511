package analysis

import (
	"sort"
	"sync/atomic"

	"fxanalysis-service/internal/domain"
)

// Analyzer is the facade over the rate-resolution and opportunity
// detection engine. It owns an immutable snapshot of the loaded
// records and the derived USD table; Load builds a whole new snapshot
// and swaps it in atomically, so concurrent readers always observe
// either the old or the new dataset in full.
type Analyzer struct {
	resolver   *RateGraphResolver
	classifier MovementClassifier
	searcher   ArbitrageSearcher

	movementThreshold float64

	snap atomic.Pointer[snapshot]
}

type snapshot struct {
	records    []domain.QuoteRecord
	table      RateTable
	lookup     *RateLookupService
	currencies []string
	pairs      []string
}

type Option func(*Analyzer)

func WithMovementThreshold(v float64) Option {
	return func(a *Analyzer) {
		if v > 0 {
			a.movementThreshold = v
		}
	}
}

func WithClassifier(c MovementClassifier) Option {
	return func(a *Analyzer) { a.classifier = c }
}

func WithSearcher(s ArbitrageSearcher) Option {
	return func(a *Analyzer) { a.searcher = s }
}

func WithResolver(r *RateGraphResolver) Option {
	return func(a *Analyzer) { a.resolver = r }
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		classifier:        NewMovementClassifier(0, 0),
		searcher:          NewArbitrageSearcher(0, 0),
		movementThreshold: DefaultMovementThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.resolver == nil {
		a.resolver = NewRateGraphResolver()
	}
	return a
}

// Load replaces the current snapshot with one built from records.
// It fails with domain.ErrEmptyDataset when no record is usable, and
// in that case the previous snapshot stays in place.
func (a *Analyzer) Load(records []domain.QuoteRecord) error {
	usable := 0
	for _, rec := range records {
		if rec.Usable() {
			usable++
		}
	}
	if usable == 0 {
		return domain.ErrEmptyDataset
	}

	owned := make([]domain.QuoteRecord, len(records))
	copy(owned, records)

	table := a.resolver.Build(owned)
	snap := &snapshot{
		records:    owned,
		table:      table,
		lookup:     NewRateLookupService(owned, table),
		currencies: collectCurrencies(owned),
		pairs:      collectPairs(owned),
	}
	a.snap.Store(snap)
	return nil
}

// Ready reports whether a snapshot has been loaded.
func (a *Analyzer) Ready() bool { return a.snap.Load() != nil }

func (a *Analyzer) current() (*snapshot, error) {
	s := a.snap.Load()
	if s == nil {
		return nil, domain.ErrEmptyDataset
	}
	return s, nil
}

// Rate resolves a currency conversion through the lookup precedence
// chain. See RateLookupService.
func (a *Analyzer) Rate(from, to string) (float64, error) {
	s, err := a.current()
	if err != nil {
		return 0, err
	}
	return s.lookup.Rate(from, to)
}

// RateTable returns a copy of the derived per-USD rate table.
func (a *Analyzer) RateTable() (RateTable, error) {
	s, err := a.current()
	if err != nil {
		return nil, err
	}
	return s.table.Clone(), nil
}

func (a *Analyzer) TopPerformers(metric string, count int) ([]domain.QuoteRecord, error) {
	s, err := a.current()
	if err != nil {
		return nil, err
	}
	return TopPerformers(s.records, metric, count), nil
}

func (a *Analyzer) WorstPerformers(metric string, count int) ([]domain.QuoteRecord, error) {
	s, err := a.current()
	if err != nil {
		return nil, err
	}
	return WorstPerformers(s.records, metric, count), nil
}

// SignificantMovements flags records whose daily change exceeds the
// threshold; a non-positive threshold selects the configured default.
func (a *Analyzer) SignificantMovements(threshold float64) ([]Movement, error) {
	s, err := a.current()
	if err != nil {
		return nil, err
	}
	if threshold <= 0 {
		threshold = a.movementThreshold
	}
	return a.classifier.Significant(s.records, threshold), nil
}

// TradingOpportunities concatenates volatility signals, reversal
// signals and arbitrage opportunities, in that fixed order.
func (a *Analyzer) TradingOpportunities() ([]string, error) {
	s, err := a.current()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, sig := range a.classifier.Volatility(s.records) {
		out = append(out, sig.Detail)
	}
	for _, sig := range a.classifier.Reversals(s.records) {
		out = append(out, sig.Detail)
	}
	for _, opp := range a.searcher.FindCycles(s.currencies, s.lookup.Rate) {
		out = append(out, opp.String())
	}
	return out, nil
}

// ArbitrageOpportunities exposes the raw cycle results.
func (a *Analyzer) ArbitrageOpportunities() ([]Opportunity, error) {
	s, err := a.current()
	if err != nil {
		return nil, err
	}
	return a.searcher.FindCycles(s.currencies, s.lookup.Rate), nil
}

// AvailableCurrencies lists every currency seen on either leg of a
// loaded pair, sorted and deduplicated.
func (a *Analyzer) AvailableCurrencies() ([]string, error) {
	s, err := a.current()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(s.currencies))
	copy(out, s.currencies)
	return out, nil
}

// AvailablePairs lists the loaded pair codes in input order.
func (a *Analyzer) AvailablePairs() ([]string, error) {
	s, err := a.current()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(s.pairs))
	copy(out, s.pairs)
	return out, nil
}

func collectCurrencies(records []domain.QuoteRecord) []string {
	seen := map[string]bool{}
	for _, rec := range records {
		if rec.Base != "" {
			seen[rec.Base] = true
		}
		if rec.Quote != "" {
			seen[rec.Quote] = true
		}
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func collectPairs(records []domain.QuoteRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.PairCode)
	}
	return out
}
