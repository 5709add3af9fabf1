package textbuffer

import (
	"strings"

	"github.com/opentui/textengine/rope"
	"github.com/opentui/textengine/width"
)

// LineCount returns the number of logical lines.
func (b *Buffer) LineCount() int {
	n := b.r.Metrics().LineCount
	if n == 0 {
		return 1
	}
	return n
}

// LineWidthAt returns the display width of logical line row, derived from
// the rope's prefix-width index rather than a segment walk.
func (b *Buffer) LineWidthAt(row int) (int, error) {
	lc := b.LineCount()
	if row < 0 || row >= lc {
		return 0, ErrInvalidIndex
	}
	if b.r.Len() == 0 {
		return 0, nil
	}
	start, err := b.r.WidthBeforeLine(row)
	if err != nil {
		return 0, ErrInvalidIndex
	}
	if row == lc-1 {
		return b.r.Metrics().TotalWidth - start, nil
	}
	next, err := b.r.WidthBeforeLine(row + 1)
	if err != nil {
		return 0, ErrInvalidIndex
	}
	return next - start, nil
}

// MaxLineWidth returns the width of the widest logical line.
func (b *Buffer) MaxLineWidth() int {
	return b.r.Metrics().MaxLineWidth
}

// GetLength returns the total column count across all lines, counting one
// virtual column per line break between logical lines.
func (b *Buffer) GetLength() int {
	lc := b.LineCount()
	total := b.r.Metrics().TotalWidth
	if lc > 1 {
		total += lc - 1
	}
	return total
}

// GetByteSize returns the total bytes of stored text content (line break
// bytes are not retained as content and are not counted).
func (b *Buffer) GetByteSize() int {
	return b.r.Metrics().TotalBytes
}

// lines reassembles every logical line's text by reading through the
// memory registry. It is O(n) in the buffer's content; callers that need
// just one line should prefer line-scoped helpers where available.
func (b *Buffer) lines() []string {
	var out []string
	var cur strings.Builder
	b.r.WalkLinesAndSegments(func(line int, seg rope.Segment) bool {
		switch seg.Kind {
		case rope.KindLineStart:
			if line > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		case rope.KindText:
			buf, err := b.mem.Get(seg.MemID)
			if err == nil {
				cur.Write(buf[seg.ByteStart:seg.ByteEnd])
			}
		}
		return true
	})
	out = append(out, cur.String())
	return out
}

// GetPlainTextInto writes the buffer's full text (logical lines joined by
// '\n') into out if it has enough capacity, else allocates a fresh slice.
// It returns the resulting bytes and the count written.
func (b *Buffer) GetPlainTextInto(out []byte) ([]byte, int) {
	text := strings.Join(b.lines(), "\n")
	n := len(text)
	if cap(out) < n {
		out = make([]byte, n)
	} else {
		out = out[:n]
	}
	copy(out, text)
	return out, n
}

// OffsetToCoords converts a global column offset (as defined by GetLength,
// counting one virtual column per line break) to (row, col). An offset on
// a line boundary resolves to the end of the earlier line; the start of
// the next line is one offset further. The row is found by binary search
// over line start offsets, each probe an O(log n) prefix-width lookup.
func (b *Buffer) OffsetToCoords(offset int) (row, col int, err error) {
	if offset < 0 || offset > b.GetLength() {
		return 0, 0, ErrInvalidIndex
	}
	lo, hi := 0, b.LineCount()-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		start, err := b.r.WidthBeforeLine(mid)
		if err != nil {
			return 0, 0, ErrInvalidIndex
		}
		if start+mid <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	start, err := b.r.WidthBeforeLine(lo)
	if err != nil {
		return 0, 0, ErrInvalidIndex
	}
	return lo, offset - start - lo, nil
}

// CoordsToOffset converts (row, col) to a global column offset.
func (b *Buffer) CoordsToOffset(row, col int) (int, error) {
	if row < 0 || row >= b.LineCount() {
		return 0, ErrInvalidIndex
	}
	start, err := b.r.WidthBeforeLine(row)
	if err != nil {
		return 0, ErrInvalidIndex
	}
	return start + row + col, nil
}

// GetTextRange extracts the text spanning global column offsets
// [startCol, endCol), clipping at grapheme boundaries: the start snaps
// forward past any grapheme already underway, the end snaps forward to
// include any grapheme that begins before endCol.
func (b *Buffer) GetTextRange(startCol, endCol int) (string, error) {
	sr, sc, err := b.OffsetToCoords(startCol)
	if err != nil {
		return "", err
	}
	er, ec, err := b.OffsetToCoords(endCol)
	if err != nil {
		return "", err
	}
	return b.GetTextRangeByCoords(sr, sc, er, ec)
}

// GetTextRangeByCoords extracts text from (startRow, startCol) to (endRow,
// endCol), both in display columns, normalizing reversed ranges.
func (b *Buffer) GetTextRangeByCoords(startRow, startCol, endRow, endCol int) (string, error) {
	if startRow > endRow || (startRow == endRow && startCol > endCol) {
		startRow, startCol, endRow, endCol = endRow, endCol, startRow, startCol
	}
	lines := b.lines()
	if startRow < 0 || endRow >= len(lines) {
		return "", ErrInvalidIndex
	}

	var out strings.Builder
	for r := startRow; r <= endRow; r++ {
		clusters := width.GraphemeClusters(lines[r])
		col := 0
		lo := 0
		if r == startRow {
			lo = startCol
		}
		for _, c := range clusters {
			w := width.ClusterWidth(c, b.cfg)
			clusterStart := col
			col += w
			if r == startRow && clusterStart < lo {
				continue
			}
			if r == endRow && clusterStart >= endCol {
				break
			}
			out.WriteString(c)
		}
		if r != endRow {
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}
