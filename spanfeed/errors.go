package spanfeed

import "errors"

// Error taxonomy for the Span Feed.
var (
	// ErrNoSpace is returned when a chunk or reservation is full and the
	// growth policy does not allow growing further. A full span ring does
	// not produce it: a commit past the ring's capacity is left out of the
	// ring.
	ErrNoSpace = errors.New("spanfeed: no space")
	// ErrMaxBytes is returned when GrowthPolicyGrow would exceed
	// Options.MaxBytes.
	ErrMaxBytes = errors.New("spanfeed: max bytes reached")
	// ErrInvalid is returned for Write, Commit, or Reserve on a closed
	// Stream, and by CommitReserved when no reservation is active.
	ErrInvalid = errors.New("spanfeed: invalid (stream closed)")
	// ErrOutOfMemory is returned when chunk allocation itself fails.
	ErrOutOfMemory = errors.New("spanfeed: out of memory")
	// ErrBusy is returned for a producer operation attempted while a
	// reservation is active, or a second concurrent reservation attempt.
	ErrBusy = errors.New("spanfeed: busy")
)

// StatusCode maps an error from this package to its wire status
// code: 0 ok, -1 NoSpace, -2 MaxBytes, -3 Invalid, -4 OutOfMemory, -5 Busy.
// Unrecognized non-nil errors map to -3 (Invalid).
func StatusCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoSpace):
		return -1
	case errors.Is(err, ErrMaxBytes):
		return -2
	case errors.Is(err, ErrOutOfMemory):
		return -4
	case errors.Is(err, ErrBusy):
		return -5
	default:
		return -3
	}
}
