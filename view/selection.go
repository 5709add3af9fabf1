package view

// Selection holds an anchor/focus pair in the view's flattened virtual-line
// character-offset space (VirtualLine.CharOffset plus an in-line column).
// The anchor persists across incremental rebuilds so a drag that spans
// several edits keeps pointing at its original start.
type Selection struct {
	hasAnchor    bool
	anchorOffset int
	focusOffset  int
}

// SetAnchor starts a new selection at the point (visualRow, col), measured
// relative to the full virtual-line list (row 0 is the first virtual line
// regardless of the current viewport scroll position). The focus starts
// equal to the anchor.
func (v *View) SetAnchor(visualRow, col int) {
	off := v.pointToOffset(visualRow, col)
	v.sel = Selection{hasAnchor: true, anchorOffset: off, focusOffset: off}
}

// UpdateFocus moves the focus end of an in-progress selection. Calling it
// before SetAnchor is a no-op.
func (v *View) UpdateFocus(visualRow, col int) {
	if !v.sel.hasAnchor {
		return
	}
	v.sel.focusOffset = v.pointToOffset(visualRow, col)
}

// ClearSelection drops any in-progress selection.
func (v *View) ClearSelection() {
	v.sel = Selection{}
}

// SelectionRange returns the normalized [start, end) character offsets of
// the current selection, or ok=false if there is none.
func (v *View) SelectionRange() (start, end int, ok bool) {
	if !v.sel.hasAnchor {
		return 0, 0, false
	}
	a, f := v.sel.anchorOffset, v.sel.focusOffset
	if a > f {
		a, f = f, a
	}
	return a, f, true
}

// pointToOffset translates a (visualRow, col) point to a flattened char
// offset, clamping rows above the viewport to the document start and rows
// at or below the viewport's bottom to the document end, per the view's
// selection hit-testing contract.
func (v *View) pointToOffset(visualRow, col int) int {
	v.ensureBuilt()
	if len(v.vlines) == 0 {
		return 0
	}
	if v.viewportHeight >= 0 {
		if visualRow < v.viewportTop {
			return 0
		}
		if visualRow >= v.viewportTop+v.viewportHeight {
			return v.textEndOffset()
		}
	}
	if visualRow < 0 {
		return 0
	}
	if visualRow >= len(v.vlines) {
		return v.textEndOffset()
	}
	vl := v.vlines[visualRow]
	if col < 0 {
		col = 0
	}
	if col > vl.Width {
		col = vl.Width
	}
	return vl.CharOffset + col
}

func (v *View) textEndOffset() int {
	if len(v.vlines) == 0 {
		return 0
	}
	last := v.vlines[len(v.vlines)-1]
	return last.CharOffset + last.Width
}
