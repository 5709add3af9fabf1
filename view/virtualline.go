// Package view implements the Text Buffer View: a layout engine that turns
// a text buffer's logical lines into wrap-aware, truncation-aware,
// viewport-clipped virtual lines, with the caches a renderer and a layout
// system read from on every frame.
package view

// Chunk is a sub-range of a logical line's styled content, projected into
// a virtual line. GraphemeStart is the column within the source line's
// text where this chunk begins; Width is its display width.
type Chunk struct {
	Text          string
	GraphemeStart int
	Width         int
	StyleID       uint32
}

// VirtualLine is one rendered row: a run of chunks plus the bookkeeping a
// renderer and selection hit-test need to map back to source coordinates.
type VirtualLine struct {
	Chunks                []Chunk
	Width                 int
	CharOffset            int
	SourceLine            int
	SourceColOffset       int
	IsTruncated           bool
	EllipsisPos           int
	TruncationSuffixStart int
}
