package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fxanalysis-service/internal/domain"
)

// flexFloat tolerates the upstream snapshot files, where numeric
// fields arrive as JSON numbers, numeric strings, or not at all.
// Unparsable values fall back to zero rather than failing the load.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// rawRecord mirrors the field names of the external snapshot contract.
type rawRecord struct {
	PairCode      string    `json:"Currency Pair"`
	Price         flexFloat `json:"Price"`
	DayChange     flexFloat `json:"Day Change"`
	PercentChange flexFloat `json:"Percent Change"`
	WeeklyChange  flexFloat `json:"Weekly"`
	MonthlyChange flexFloat `json:"Monthly"`
	YTDChange     flexFloat `json:"YTD"`
	YoYChange     flexFloat `json:"YoY"`
	Group         string    `json:"Group"`
	Timestamp     string    `json:"Timestamp"`
}

func (r rawRecord) toDomain() domain.QuoteRecord {
	rec := domain.NewQuoteRecord(r.PairCode, float64(r.Price))
	rec.DayChange = float64(r.DayChange)
	rec.PercentChange = float64(r.PercentChange)
	rec.WeeklyChange = float64(r.WeeklyChange)
	rec.MonthlyChange = float64(r.MonthlyChange)
	rec.YTDChange = float64(r.YTDChange)
	rec.YoYChange = float64(r.YoYChange)
	rec.Group = r.Group
	rec.Timestamp = r.Timestamp
	return rec
}

// ParseJSON decodes a snapshot array. Field-level defects are absorbed
// into zero values; only a structurally broken document is an error.
func ParseJSON(r io.Reader) ([]domain.QuoteRecord, error) {
	var raw []rawRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode snapshot json: %w", err)
	}
	out := make([]domain.QuoteRecord, 0, len(raw))
	for _, rr := range raw {
		out = append(out, rr.toDomain())
	}
	return out, nil
}
