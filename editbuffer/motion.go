package editbuffer

// MoveLeft moves the cursor back by one grapheme cluster, wrapping to the
// end of the previous line at column 0.
func (e *EditBuffer) MoveLeft() bool {
	row, col := e.cursor.Row, e.cursor.Col
	if col > 0 {
		w, _ := e.buf.GetPrevGraphemeWidth(row, col)
		if w == 0 {
			w = 1
		}
		return e.tryMove(Cursor{Row: row, Col: col - w}, "already at buffer start", false)
	}
	if row > 0 {
		prevWidth, _ := e.buf.LineWidthAt(row - 1)
		return e.tryMove(Cursor{Row: row - 1, Col: prevWidth}, "already at buffer start", false)
	}
	if e.BoundaryHit != nil {
		e.BoundaryHit(e.cursor, "already at buffer start")
	}
	return false
}

// MoveRight moves the cursor forward by one grapheme cluster, wrapping to
// the start of the next line at end of line.
func (e *EditBuffer) MoveRight() bool {
	row, col := e.cursor.Row, e.cursor.Col
	lineWidth, _ := e.buf.LineWidthAt(row)
	if col < lineWidth {
		w, _ := e.buf.GetGraphemeWidthAt(row, col)
		if w == 0 {
			w = 1
		}
		return e.tryMove(Cursor{Row: row, Col: col + w}, "already at buffer end", false)
	}
	if row < e.buf.LineCount()-1 {
		return e.tryMove(Cursor{Row: row + 1, Col: 0}, "already at buffer end", false)
	}
	if e.BoundaryHit != nil {
		e.BoundaryHit(e.cursor, "already at buffer end")
	}
	return false
}

// MoveUp moves the cursor to the previous line, preserving DesiredCol
// (clamped to the shorter line's width) rather than snapping to it.
func (e *EditBuffer) MoveUp() bool {
	if e.cursor.Row == 0 {
		if e.BoundaryHit != nil {
			e.BoundaryHit(e.cursor, "already at top")
		}
		return false
	}
	newRow := e.cursor.Row - 1
	return e.moveVertical(newRow, "already at top")
}

// MoveDown moves the cursor to the next line, preserving DesiredCol.
func (e *EditBuffer) MoveDown() bool {
	if e.cursor.Row >= e.buf.LineCount()-1 {
		if e.BoundaryHit != nil {
			e.BoundaryHit(e.cursor, "already at bottom")
		}
		return false
	}
	newRow := e.cursor.Row + 1
	return e.moveVertical(newRow, "already at bottom")
}

func (e *EditBuffer) moveVertical(newRow int, boundaryReason string) bool {
	desired := e.cursor.DesiredCol
	lineWidth, _ := e.buf.LineWidthAt(newRow)
	newCol := desired
	if newCol > lineWidth {
		newCol = lineWidth
	}
	from := e.cursor
	to := Cursor{Row: newRow, Col: newCol, DesiredCol: desired}
	if e.Validator != nil && !e.Validator(from, to) {
		if e.BoundaryHit != nil {
			e.BoundaryHit(to, boundaryReason)
		}
		return false
	}
	e.setCursor(newRow, newCol, true)
	return true
}
