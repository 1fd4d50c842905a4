package sieve

import (
	"fmt"

	"github.com/hupe1980/primeasn/internal/bitvector"
)

var (
	// ErrInvalidArgument is returned when the upper bound is not greater than 2
	// or the candidate set is empty.
	ErrInvalidArgument = bitvector.ErrInvalidArgument

	// ErrIndexOutOfRange is returned when a query addresses a value outside [0, N].
	ErrIndexOutOfRange = bitvector.ErrIndexOutOfRange
)

// BoundError indicates an upper bound that cannot be sieved.
//
// It matches ErrInvalidArgument via errors.Is.
type BoundError struct {
	Bound int
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("invalid upper bound: %d (must be greater than 2)", e.Bound)
}

func (e *BoundError) Unwrap() error { return ErrInvalidArgument }

// IndexError indicates a query for a value outside the sieved range.
//
// It matches ErrIndexOutOfRange via errors.Is.
type IndexError struct {
	Index int
	Bound int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d]", e.Index, e.Bound)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
