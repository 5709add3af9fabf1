package textbuffer

import (
	"github.com/opentui/textengine/rope"
	"github.com/opentui/textengine/style"
)

// StyledChunk pairs a byte run with an optional override style. Chunks with
// no style contribute plain text; chunks with a style register a dynamic
// entry in the attached style registry and are applied as a highlight of
// priority 1 over their column range.
type StyledChunk struct {
	Bytes []byte
	Style *style.TextStyle
}

// SetStyledText replaces the buffer's content with the concatenation of
// chunks' bytes, then, if a syntax style registry is attached, converts
// every styled chunk into a highlight span tagged with a shared ref so a
// later call can clear this whole styled-text application in one
// RemoveHighlightsByRef.
func (b *Buffer) SetStyledText(chunks []StyledChunk) error {
	var total []byte
	for _, c := range chunks {
		total = append(total, c.Bytes...)
	}
	if err := b.SetText(total); err != nil {
		return err
	}
	if b.styleReg == nil {
		return nil
	}

	b.BeginBatch()
	defer b.CommitBatch()

	const styledTextRef = 1
	row, col := 0, 0
	for _, c := range chunks {
		if c.Style == nil {
			row, col = b.walkChunkColumns(row, col, c.Bytes, nil)
			continue
		}
		styleID := b.styleReg.Register(*c.Style)
		row, col = b.walkChunkColumns(row, col, c.Bytes, func(r, cs, ce int) {
			b.AddHighlight(r, cs, ce, styleID, 1, styledTextRef)
		})
	}
	return nil
}

// walkChunkColumns re-segments data the same way the buffer segments any
// other input, invoking emit with the (row, colStart, colEnd) of each Text
// run it finds, starting from the given cursor position and continuing the
// current line on the chunk's leading edge.
func (b *Buffer) walkChunkColumns(row, col int, data []byte, emit func(row, colStart, colEnd int)) (int, int) {
	segs := segmentLines(0, data, 0, b.cfg)
	first := true
	for _, s := range segs {
		switch s.Kind {
		case rope.KindLineStart:
			if !first {
				row++
				col = 0
			}
			first = false
		case rope.KindText:
			w := s.Width()
			if emit != nil {
				emit(row, col, col+w)
			}
			col += w
		}
	}
	return row, col
}
