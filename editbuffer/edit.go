package editbuffer

import "github.com/opentui/textengine/width"

// InsertText splices data into the buffer at the cursor and advances the
// cursor past it: to row+num_breaks, col = width of the text after the
// last break, or col+width(data) if data has no break at all.
func (e *EditBuffer) InsertText(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := e.buf.InsertAtCoords(e.cursor.Row, e.cursor.Col, data); err != nil {
		return err
	}
	newRow, newCol := advanceCursorForInsert(e.cursor.Row, e.cursor.Col, data, e.cfg)
	e.setCursor(newRow, newCol, false)
	e.notifyContentChanged()
	return nil
}

// DeleteRange removes the text between (startRow, startCol) and
// (endRow, endCol), normalizing a reversed range, and moves the cursor to
// the normalized start. The removed text is retained for LastDeleted.
func (e *EditBuffer) DeleteRange(startRow, startCol, endRow, endCol int) error {
	if startRow > endRow || (startRow == endRow && startCol > endCol) {
		startRow, startCol, endRow, endCol = endRow, endCol, startRow, startCol
	}
	deleted, err := e.buf.DeleteRangeByCoords(startRow, startCol, endRow, endCol)
	if err != nil {
		return err
	}
	e.lastDeleted = deleted
	e.hasLastDelete = true
	e.setCursor(startRow, startCol, false)
	e.notifyContentChanged()
	return nil
}

// advanceCursorForInsert walks data using the same CR/LF/CRLF break
// normalization the buffer's segmenter uses, returning the cursor position
// immediately after the inserted text.
func advanceCursorForInsert(row, col int, data []byte, cfg width.Config) (int, int) {
	n := len(data)
	i, lineStart, breaks := 0, 0, 0
	for i < n {
		switch data[i] {
		case '\n':
			breaks++
			i++
			lineStart = i
		case '\r':
			breaks++
			i++
			if i < n && data[i] == '\n' {
				i++
			}
			lineStart = i
		default:
			i++
		}
	}
	tail := string(data[lineStart:])
	if breaks == 0 {
		return row, col + width.WidthWithTabs(tail, col, cfg)
	}
	return row + breaks, width.WidthWithTabs(tail, 0, cfg)
}
