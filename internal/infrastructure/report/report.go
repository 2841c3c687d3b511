// Package report renders the plain-text analysis summary handed to
// the presentation layer and written by cmd/analyze.
package report

import (
	"fmt"
	"os"
	"strings"

	"fxanalysis-service/internal/analysis"
	"fxanalysis-service/internal/domain"
)

const dailyPerformerCount = 5

// Render builds the full report from the analyzer's current snapshot.
func Render(an *analysis.Analyzer) (string, error) {
	top, err := an.TopPerformers(domain.MetricPercentChange, dailyPerformerCount)
	if err != nil {
		return "", err
	}
	worst, err := an.WorstPerformers(domain.MetricPercentChange, dailyPerformerCount)
	if err != nil {
		return "", err
	}
	movements, err := an.SignificantMovements(0)
	if err != nil {
		return "", err
	}
	opportunities, err := an.TradingOpportunities()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Currency Analysis Report\n")
	b.WriteString("=======================\n\n")

	fmt.Fprintf(&b, "Top %d Daily Performers:\n", dailyPerformerCount)
	for _, rec := range top {
		fmt.Fprintf(&b, "- %s: %.2f%%\n", rec.PairCode, rec.PercentChange)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Worst %d Daily Performers:\n", dailyPerformerCount)
	for _, rec := range worst {
		fmt.Fprintf(&b, "- %s: %.2f%%\n", rec.PairCode, rec.PercentChange)
	}
	b.WriteString("\n")

	b.WriteString("Significant Movements:\n")
	if len(movements) == 0 {
		b.WriteString("No significant movements detected.\n")
	} else {
		for _, m := range movements {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}
	b.WriteString("\n")

	b.WriteString("Trading Opportunities:\n")
	if len(opportunities) == 0 {
		b.WriteString("No trading opportunities identified.\n")
	} else {
		for _, o := range opportunities {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}

	return b.String(), nil
}

// WriteFile renders the report and writes it to path.
func WriteFile(path string, an *analysis.Analyzer) error {
	text, err := Render(an)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
