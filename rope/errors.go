package rope

import "errors"

// ErrInvalidIndex is returned for an out-of-range weight, row, or offset.
var ErrInvalidIndex = errors.New("rope: invalid index")
