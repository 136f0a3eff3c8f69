package services

import "errors"

// Sampler error kinds. Callers distinguish them with errors.Is.
var (
	// ErrEmptyObservations indicates an empty observation set reached the
	// sampler. Lookups should have failed earlier with ErrKeyNotFound, so
	// hitting this means an upstream invariant was violated.
	ErrEmptyObservations = errors.New("empty observation set")

	// ErrInvalidDrawCount indicates a negative requested draw count
	ErrInvalidDrawCount = errors.New("draw count cannot be negative")

	// ErrCombine indicates the combination function failed for a draw pair.
	// The whole sampling call fails; dropping single draws would bias the
	// resulting distribution.
	ErrCombine = errors.New("combine failed")
)
