package view

// WrapMode selects how logical lines that exceed the wrap width are split
// across virtual lines.
type WrapMode int

const (
	// WrapNone emits exactly one virtual line per logical line; the
	// viewport alone decides what is visible.
	WrapNone WrapMode = iota
	// WrapChar hard-wraps at column boundaries. A single grapheme wider
	// than the wrap width is never split: it gets a virtual line to
	// itself.
	WrapChar
	// WrapWord wraps at word-break positions, falling back to WrapChar
	// for a line with no break that fits.
	WrapWord
)

func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "none"
	case WrapChar:
		return "char"
	case WrapWord:
		return "word"
	default:
		return "unknown"
	}
}
