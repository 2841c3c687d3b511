package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fxanalysis-service/internal/analysis"
	"fxanalysis-service/internal/domain"
	"fxanalysis-service/internal/ingest"
	"fxanalysis-service/internal/infrastructure/report"

	"github.com/go-chi/chi/v5"
)

// Server exposes the analysis engine over HTTP. The snapshot source is
// optional; without it POST /snapshot/reload answers 503.
type Server struct {
	an     *analysis.Analyzer
	source ingest.Source
}

func NewServer(an *analysis.Analyzer, source ingest.Source) *Server {
	return &Server{an: an, source: source}
}

func (s *Server) GetRate(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(chi.URLParam(r, "from"))
	to := strings.ToUpper(chi.URLParam(r, "to"))
	// Identity queries are valid even though the pair form forbids
	// identical legs.
	ok := domain.ValidatePair(domain.MakePair(from, to)) ||
		(from == to && domain.ValidCurrency(from))
	if !ok {
		writeDomainError(w, domain.ErrInvalidPair)
		return
	}
	rate, err := s.an.Rate(from, to)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"from": from, "to": to, "rate": rate})
}

func (s *Server) GetRateTable(w http.ResponseWriter, _ *http.Request) {
	table, err := s.an.RateTable()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"numeraire": analysis.Numeraire, "rates": table})
}

type performerItem struct {
	Pair   string  `json:"pair"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
	Group  string  `json:"group,omitempty"`
}

func (s *Server) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	s.performers(w, r, s.an.TopPerformers)
}

func (s *Server) GetWorstPerformers(w http.ResponseWriter, r *http.Request) {
	s.performers(w, r, s.an.WorstPerformers)
}

func (s *Server) performers(w http.ResponseWriter, r *http.Request, rank func(string, int) ([]domain.QuoteRecord, error)) {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = domain.MetricPercentChange
	}
	count := 5
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid count")
			return
		}
		count = n
	}
	records, err := rank(metric, count)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	items := make([]performerItem, 0, len(records))
	for _, rec := range records {
		items = append(items, performerItem{
			Pair:   rec.PairCode,
			Price:  rec.Price,
			Change: rec.ChangeByMetric(metric),
			Group:  rec.Group,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"metric": metric, "performers": items})
}

type movementItem struct {
	Pair      string  `json:"pair"`
	Direction string  `json:"direction"`
	Magnitude float64 `json:"magnitude"`
	Price     float64 `json:"price"`
}

func (s *Server) GetMovements(w http.ResponseWriter, r *http.Request) {
	var threshold float64
	if v := r.URL.Query().Get("threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			writeError(w, http.StatusBadRequest, "invalid threshold")
			return
		}
		threshold = f
	}
	movements, err := s.an.SignificantMovements(threshold)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	items := make([]movementItem, 0, len(movements))
	for _, m := range movements {
		items = append(items, movementItem{
			Pair:      m.PairCode,
			Direction: string(m.Direction),
			Magnitude: m.Magnitude,
			Price:     m.Price,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"movements": items})
}

func (s *Server) GetOpportunities(w http.ResponseWriter, _ *http.Request) {
	opps, err := s.an.TradingOpportunities()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if opps == nil {
		opps = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"opportunities": opps})
}

func (s *Server) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	currencies, err := s.an.AvailableCurrencies()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"currencies": currencies})
}

func (s *Server) GetPairs(w http.ResponseWriter, _ *http.Request) {
	pairs, err := s.an.AvailablePairs()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pairs": pairs})
}

func (s *Server) GetReport(w http.ResponseWriter, _ *http.Request) {
	text, err := report.Render(s.an)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (s *Server) ReloadSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.source == nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot source configured")
		return
	}
	records, err := s.source.Fetch(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "snapshot fetch failed")
		return
	}
	if err := s.an.Load(records); err != nil {
		writeDomainError(w, err)
		return
	}
	pairs, _ := s.an.AvailablePairs()
	writeJSON(w, http.StatusOK, map[string]any{"loaded": len(records), "pairs": len(pairs)})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPair):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRateUnavailable):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmptyDataset):
		writeError(w, http.StatusServiceUnavailable, "no snapshot loaded")
	default:
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errBody{Code: status, Message: msg})
}
