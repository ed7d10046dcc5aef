package billing

import "errors"

var (
	ErrInvalidCadence  = errors.New("invalid cadence")
	ErrInvalidCategory = errors.New("invalid payment category")
	ErrInvalidDuration = errors.New("duration must be at least one month")
	ErrInvalidAmount   = errors.New("amount must be positive")
)
