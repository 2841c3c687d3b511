package domain

import "errors"

var (
	// ErrRateUnavailable means no direct, inverse or derived path exists
	// between two currencies. Callers must not coerce it to a zero rate.
	ErrRateUnavailable = errors.New("rate unavailable")

	// ErrEmptyDataset means a load produced zero usable records.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrInvalidPair means a pair code failed boundary validation.
	ErrInvalidPair = errors.New("invalid pair")
)
