package bptree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bptree: invalid configuration")
	// ErrInvariantViolation signals a structural invariant breach found by Check.
	ErrInvariantViolation = errors.New("bptree: invariant violation")
)
