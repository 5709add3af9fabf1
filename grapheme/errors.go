package grapheme

import "errors"

// Error taxonomy for the grapheme pool. Generation mismatches and invalid
// ids are surfaced to the caller rather than panicking: a stale id reaching
// display-time code is expected to happen (a view racing a decref) and
// recovers by treating the cell as not present and re-interning.
var (
	// ErrOutOfMemory is returned when no free slot exists in the needed size
	// class and the pool cannot grow, or when the requested bytes exceed the
	// largest size class (128 bytes).
	ErrOutOfMemory = errors.New("grapheme: out of memory")
	// ErrWrongGeneration is returned when an id's embedded generation does
	// not match the slot's current generation: the id refers to a slot that
	// has since been freed and reused.
	ErrWrongGeneration = errors.New("grapheme: wrong generation")
	// ErrInvalidID is returned for an id whose class or slot index does not
	// address a live slot at all.
	ErrInvalidID = errors.New("grapheme: invalid id")
)
