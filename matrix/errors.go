// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows signals that input rows have differing lengths where a
	// rectangular shape is required (construction, CSV ingestion).
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrBadValue signals a cell that could not be parsed as a finite float64
	// during CSV ingestion.
	ErrBadValue = errors.New("matrix: invalid cell value")
)
