package editbuffer

import "github.com/opentui/textengine/width"

// WordForward moves the cursor to the first word-break position strictly
// after it on the current logical line; if none exists, it jumps to the
// start of the next line; if there is no next line, it moves to the end
// of the current line.
func (e *EditBuffer) WordForward() bool {
	row, col := e.cursor.Row, e.cursor.Col
	if line, err := e.buf.LineText(row); err == nil {
		for _, bcol := range columnBreaksForLine(line, e.cfg) {
			if bcol > col {
				return e.tryMove(Cursor{Row: row, Col: bcol}, "already at buffer end", false)
			}
		}
	}
	if row < e.buf.LineCount()-1 {
		return e.tryMove(Cursor{Row: row + 1, Col: 0}, "already at buffer end", false)
	}
	lineWidth, _ := e.buf.LineWidthAt(row)
	if col < lineWidth {
		return e.tryMove(Cursor{Row: row, Col: lineWidth}, "already at buffer end", false)
	}
	if e.BoundaryHit != nil {
		e.BoundaryHit(e.cursor, "already at buffer end")
	}
	return false
}

// WordBackward moves the cursor to the last word-break position strictly
// before it on the current logical line; if none exists, it jumps to the
// end of the previous line; if there is no previous line, it moves to
// (0, 0).
func (e *EditBuffer) WordBackward() bool {
	row, col := e.cursor.Row, e.cursor.Col
	if line, err := e.buf.LineText(row); err == nil {
		last := -1
		for _, bcol := range columnBreaksForLine(line, e.cfg) {
			if bcol < col {
				last = bcol
			} else {
				break
			}
		}
		if last >= 0 {
			return e.tryMove(Cursor{Row: row, Col: last}, "already at buffer start", false)
		}
	}
	if row > 0 {
		prevWidth, _ := e.buf.LineWidthAt(row - 1)
		return e.tryMove(Cursor{Row: row - 1, Col: prevWidth}, "already at buffer start", false)
	}
	if row == 0 && col == 0 {
		if e.BoundaryHit != nil {
			e.BoundaryHit(e.cursor, "already at buffer start")
		}
		return false
	}
	return e.tryMove(Cursor{Row: 0, Col: 0}, "already at buffer start", false)
}

// columnBreaksForLine converts width.WordBreaks' byte offsets into display
// columns by walking line's grapheme clusters in lockstep, the same
// technique view's word-wrap mode uses to turn byte-offset breaks into
// glyph-indexed ones. A break ending a non-whitespace segment that is
// immediately followed by a whitespace segment is dropped: its own
// position (word-end, just before the space) is redundant with the break
// that follows it (word-start, just after the space), and word motion
// only wants to land on the latter.
func columnBreaksForLine(line string, cfg width.Config) []int {
	breaks := width.WordBreaks(line)
	breaks = filterRedundantWordEnds(breaks)
	if len(breaks) == 0 {
		return nil
	}
	var cols []int
	col, byteOff, bi := 0, 0, 0
	for _, c := range width.GraphemeClusters(line) {
		col += width.ClusterWidth(c, cfg)
		byteOff += len(c)
		for bi < len(breaks) && breaks[bi].ByteOffset <= byteOff {
			if breaks[bi].ByteOffset == byteOff {
				cols = append(cols, col)
			}
			bi++
		}
	}
	return cols
}

func filterRedundantWordEnds(breaks []width.WordBreak) []width.WordBreak {
	var out []width.WordBreak
	for i, b := range breaks {
		if i+1 < len(breaks) && breaks[i+1].Whitespace {
			continue
		}
		out = append(out, b)
	}
	return out
}
