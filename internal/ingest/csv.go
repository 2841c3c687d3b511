package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fxanalysis-service/internal/domain"
)

// ParseCSV decodes a snapshot with a header row naming the columns by
// the external field contract. Unknown columns are ignored; missing or
// unparsable numeric cells default to zero.
func ParseCSV(r io.Reader) ([]domain.QuoteRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(row []string, name string) float64 {
		s := strings.TrimSuffix(cell(row, name), "%")
		if s == "" {
			return 0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return v
	}

	var out []domain.QuoteRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rec := domain.NewQuoteRecord(cell(row, "Currency Pair"), num(row, "Price"))
		rec.DayChange = num(row, "Day Change")
		rec.PercentChange = num(row, "Percent Change")
		rec.WeeklyChange = num(row, "Weekly")
		rec.MonthlyChange = num(row, "Monthly")
		rec.YTDChange = num(row, "YTD")
		rec.YoYChange = num(row, "YoY")
		rec.Group = cell(row, "Group")
		rec.Timestamp = cell(row, "Timestamp")
		out = append(out, rec)
	}
	return out, nil
}
