package editbuffer

// Undo restores the underlying buffer to its prior stored snapshot and
// revalidates the cursor against the restored content, clamping row/col
// into bounds rather than leaving them pointing past the end of a now-
// shorter buffer.
func (e *EditBuffer) Undo() bool {
	if _, ok := e.buf.Undo(); !ok {
		return false
	}
	e.revalidateCursor()
	e.notifyContentChanged()
	return true
}

// Redo reapplies the most recently undone snapshot, revalidating the
// cursor the same way Undo does.
func (e *EditBuffer) Redo() bool {
	if _, ok := e.buf.Redo(); !ok {
		return false
	}
	e.revalidateCursor()
	e.notifyContentChanged()
	return true
}

// CanUndo reports whether Undo would do anything.
func (e *EditBuffer) CanUndo() bool { return e.buf.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (e *EditBuffer) CanRedo() bool { return e.buf.CanRedo() }

// revalidateCursor clamps the cursor into the restored buffer's bounds
// after an undo/redo, since the line it pointed at may have shrunk, grown,
// or disappeared entirely.
func (e *EditBuffer) revalidateCursor() {
	row := e.cursor.Row
	if lc := e.buf.LineCount(); row >= lc {
		row = lc - 1
	}
	if row < 0 {
		row = 0
	}
	lineWidth, _ := e.buf.LineWidthAt(row)
	col := e.cursor.Col
	if col > lineWidth {
		col = lineWidth
	}
	e.setCursor(row, col, false)
}
