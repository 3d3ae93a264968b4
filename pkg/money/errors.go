package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when a string cannot be parsed as a decimal amount.
	ErrInvalidAmount = errors.New("invalid amount")
)
