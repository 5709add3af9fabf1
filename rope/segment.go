// Package rope implements the segment rope: the ordered sequence of
// line-start markers, line breaks, and text chunks that backs a buffer's
// content. It exposes weight-indexed insert/delete, a row marker index, and
// an undo/redo history of prior roots.
package rope

// Kind tags a Segment's variant.
type Kind uint8

const (
	// KindLineStart is a zero-width marker at the beginning of a logical line.
	KindLineStart Kind = iota
	// KindBreak is a zero-width line break separating two logical lines.
	KindBreak
	// KindText is a reference into one memory buffer.
	KindText
)

// TextFlags are precomputed hints about a Text segment's content.
type TextFlags uint8

const (
	// FlagASCIIOnly marks a Text segment whose bytes are all ASCII,
	// enabling byte-count-as-width fast paths.
	FlagASCIIOnly TextFlags = 1 << iota
)

// Segment is a tagged union over the rope's three leaf variants. Only the
// fields relevant to Kind are meaningful; LineStart and Break carry no
// payload.
type Segment struct {
	Kind      Kind
	MemID     uint8
	ByteStart int
	ByteEnd   int
	WidthCols int
	Flags     TextFlags
}

// NewLineStart returns a zero-width line-start marker.
func NewLineStart() Segment {
	return Segment{Kind: KindLineStart}
}

// NewBreak returns a zero-width line-break marker.
func NewBreak() Segment {
	return Segment{Kind: KindBreak}
}

// NewText returns a Text segment referencing [byteStart, byteEnd) of mem id
// memID, with its display width already computed.
func NewText(memID uint8, byteStart, byteEnd, widthCols int, flags TextFlags) Segment {
	return Segment{
		Kind:      KindText,
		MemID:     memID,
		ByteStart: byteStart,
		ByteEnd:   byteEnd,
		WidthCols: widthCols,
		Flags:     flags,
	}
}

// ByteLen returns the number of bytes a Text segment spans; zero for
// LineStart and Break.
func (s Segment) ByteLen() int {
	if s.Kind != KindText {
		return 0
	}
	return s.ByteEnd - s.ByteStart
}

// Width returns the segment's display-column width.
func (s Segment) Width() int {
	if s.Kind != KindText {
		return 0
	}
	return s.WidthCols
}

// ASCIIOnly reports whether the fast ASCII-width path applies.
func (s Segment) ASCIIOnly() bool {
	return s.Flags&FlagASCIIOnly != 0
}

// mergeableWith reports whether two adjacent Text segments reference
// contiguous bytes in the same mem buffer and can be rewritten as one.
func (s Segment) mergeableWith(next Segment) bool {
	return s.Kind == KindText && next.Kind == KindText &&
		s.MemID == next.MemID && s.ByteEnd == next.ByteStart
}
