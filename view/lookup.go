package view

// FindVisualLineIndex returns the virtual line whose
// [SourceColOffset, SourceColOffset+Width) range contains col on logical
// line row. Non-final sub-lines of a wrapped logical line use a half-open
// range; the last sub-line is closed at its upper bound so a column sitting
// exactly at the end of the logical line (not a mid-line wrap boundary)
// still resolves to it rather than falling through.
func (v *View) FindVisualLineIndex(row, col int) (int, bool) {
	first, count, ok := v.LineRange(row)
	if !ok || count == 0 {
		return 0, false
	}
	for i := 0; i < count; i++ {
		idx := first + i
		vl := v.vlines[idx]
		isLast := i == count-1
		if isLast {
			if col >= vl.SourceColOffset && col <= vl.SourceColOffset+vl.Width {
				return idx, true
			}
		} else {
			if col >= vl.SourceColOffset && col < vl.SourceColOffset+vl.Width {
				return idx, true
			}
		}
	}
	return first + count - 1, true
}
