package analysis

import (
	"fmt"
	"math"

	"fxanalysis-service/internal/domain"
)

type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// Movement describes a quote whose daily percent change exceeded a
// threshold.
type Movement struct {
	PairCode  string
	Direction Direction
	Magnitude float64
	Price     float64
}

func (m Movement) String() string {
	return fmt.Sprintf("%s: %s %.2f%% to %.4f", m.PairCode, m.Direction, m.Magnitude, m.Price)
}

type SignalKind string

const (
	SignalVolatility SignalKind = "volatility"
	SignalReversal   SignalKind = "reversal"
)

// Signal is a volatility or reversal flag on a single pair.
type Signal struct {
	Kind     SignalKind
	PairCode string
	Detail   string
}

// MovementClassifier flags abnormal price movements. Thresholds are
// percentages; the zero value gets the stock defaults.
type MovementClassifier struct {
	VolatilityThreshold float64
	ReversalThreshold   float64
}

const (
	DefaultMovementThreshold   = 0.5
	DefaultVolatilityThreshold = 1.0
	DefaultReversalThreshold   = 0.5
)

func NewMovementClassifier(volatility, reversal float64) MovementClassifier {
	if volatility <= 0 {
		volatility = DefaultVolatilityThreshold
	}
	if reversal <= 0 {
		reversal = DefaultReversalThreshold
	}
	return MovementClassifier{VolatilityThreshold: volatility, ReversalThreshold: reversal}
}

// Significant returns movements whose absolute percent change exceeds
// the threshold, in input record order.
func (c MovementClassifier) Significant(records []domain.QuoteRecord, threshold float64) []Movement {
	var out []Movement
	for _, rec := range records {
		mag := math.Abs(rec.PercentChange)
		if mag <= threshold {
			continue
		}
		dir := DirectionDown
		if rec.PercentChange > 0 {
			dir = DirectionUp
		}
		out = append(out, Movement{
			PairCode:  rec.PairCode,
			Direction: dir,
			Magnitude: mag,
			Price:     rec.Price,
		})
	}
	return out
}

// Volatility flags pairs whose daily move exceeds the volatility
// threshold, independent of any reversal flag on the same record.
func (c MovementClassifier) Volatility(records []domain.QuoteRecord) []Signal {
	var out []Signal
	for _, rec := range records {
		if math.Abs(rec.PercentChange) <= c.VolatilityThreshold {
			continue
		}
		out = append(out, Signal{
			Kind:     SignalVolatility,
			PairCode: rec.PairCode,
			Detail: fmt.Sprintf("High Volatility: %s moved %.2f%% today",
				rec.PairCode, math.Abs(rec.PercentChange)),
		})
	}
	return out
}

// Reversals flags pairs where the daily move opposes the weekly trend
// by a non-trivial amount.
func (c MovementClassifier) Reversals(records []domain.QuoteRecord) []Signal {
	var out []Signal
	for _, rec := range records {
		if rec.PercentChange*rec.WeeklyChange >= 0 {
			continue
		}
		if math.Abs(rec.PercentChange) <= c.ReversalThreshold {
			continue
		}
		out = append(out, Signal{
			Kind:     SignalReversal,
			PairCode: rec.PairCode,
			Detail: fmt.Sprintf("Potential Reversal: %s is %s %.2f%% today, but %s %.2f%% this week",
				rec.PairCode,
				upDown(rec.PercentChange), math.Abs(rec.PercentChange),
				upDown(rec.WeeklyChange), math.Abs(rec.WeeklyChange)),
		})
	}
	return out
}

func upDown(v float64) string {
	if v > 0 {
		return "up"
	}
	return "down"
}
