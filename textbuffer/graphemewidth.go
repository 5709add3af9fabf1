package textbuffer

import (
	"strings"

	"github.com/opentui/textengine/rope"
	"github.com/opentui/textengine/width"
)

// GetGraphemeWidthAt returns the display width of the grapheme cluster that
// starts at column col on logical line row.
func (b *Buffer) GetGraphemeWidthAt(row, col int) (int, error) {
	line, err := b.lineText(row)
	if err != nil {
		return 0, err
	}
	pos := 0
	for _, c := range width.GraphemeClusters(line) {
		w := width.ClusterWidth(c, b.cfg)
		if pos == col {
			return w, nil
		}
		pos += w
	}
	return 0, nil
}

// GetPrevGraphemeWidth returns the display width of the grapheme cluster
// immediately preceding column col on logical line row.
func (b *Buffer) GetPrevGraphemeWidth(row, col int) (int, error) {
	line, err := b.lineText(row)
	if err != nil {
		return 0, err
	}
	pos := 0
	prevWidth := 0
	for _, c := range width.GraphemeClusters(line) {
		w := width.ClusterWidth(c, b.cfg)
		if pos >= col {
			break
		}
		prevWidth = w
		pos += w
	}
	return prevWidth, nil
}

// LineText returns the plain text of logical line row, with no trailing
// line-break character.
func (b *Buffer) LineText(row int) (string, error) {
	return b.lineText(row)
}

func (b *Buffer) lineText(row int) (string, error) {
	if row < 0 || row >= b.LineCount() {
		return "", ErrInvalidIndex
	}
	var sb strings.Builder
	err := b.r.WalkLineSegments(row, func(seg rope.Segment) bool {
		buf, err := b.mem.Get(seg.MemID)
		if err == nil {
			sb.Write(buf[seg.ByteStart:seg.ByteEnd])
		}
		return true
	})
	if err != nil {
		return "", ErrInvalidIndex
	}
	return sb.String(), nil
}
