package rope

// Rope is the ordered sequence of segments backing a buffer's content,
// stored as a persistent weight-balanced binary tree of Segment leaves.
// Every mutation produces new nodes only along the edited path and
// shares every other subtree with the prior version, which is what makes
// StoreUndo/Undo/Redo O(1): undoing is keeping an old root pointer alive,
// never copying content. MarkerLookup does O(log n) work along a single
// root-to-leaf path; InsertSliceByWeight and DeleteRangeByWeight split
// along one such path, but the seam-merge check at each level makes a
// split O(log² n) in the worst case.
type Rope struct {
	root *node
	hist history
}

// New creates an empty rope.
func New() *Rope {
	return &Rope{hist: newHistory()}
}

// Metrics returns the rope's aggregated totals.
func (r *Rope) Metrics() Metrics {
	if r.root == nil {
		return Metrics{}
	}
	return r.root.m.toMetrics()
}

// Len returns the number of segments.
func (r *Rope) Len() int {
	return lengthOf(r.root)
}

// Segments returns a flattened, in-order snapshot of the rope's leaves.
// It costs O(n) to build; callers on the hot insert/delete/lookup path
// should prefer MarkerLookup, WalkLinesAndSegments, or Metrics instead.
func (r *Rope) Segments() []Segment {
	if r.root == nil {
		return nil
	}
	out := make([]Segment, 0, r.root.length)
	collectLeaves(r.root, &out)
	return out
}

// InsertSliceByWeight splices segs into the rope so that its first inserted
// column lands at the given column weight, splitting a Text segment that
// straddles the boundary via splitter. A weight on a line boundary cuts
// before the boundary's zero-width markers (the splice joins the end of
// the earlier line); use InsertSliceAt to address the start of the later
// line instead.
func (r *Rope) InsertSliceByWeight(weight int, segs []Segment, splitter LeafSplitter) error {
	if weight < 0 || weight > widthOf(r.root) {
		return ErrInvalidIndex
	}
	left, right := splitByWeight(r.root, weight, splitter)
	mid := buildBalanced(segs)
	r.root = concatMerge(concatMerge(left, mid), right)
	return nil
}

// InsertSliceAt splices segs into logical line row at column col. The
// (row, col) position distinguishes the start of a line from the end of
// the previous one, two positions a pure column weight cannot tell apart
// once zero-width Break and LineStart markers coincide there. col must
// not exceed line row's width.
func (r *Rope) InsertSliceAt(row, col int, segs []Segment, splitter LeafSplitter) error {
	if row < 0 || col < 0 {
		return ErrInvalidIndex
	}
	if r.root == nil {
		if row != 0 || col != 0 {
			return ErrInvalidIndex
		}
		r.root = buildBalanced(segs)
		return nil
	}
	left, right, err := splitAtPosition(r.root, row, col, splitter)
	if err != nil {
		return err
	}
	mid := buildBalanced(segs)
	r.root = concatMerge(concatMerge(left, mid), right)
	return nil
}

// DeleteRangeByWeight removes the column range [a, b) from the rope,
// splitting any Text segments that straddle the boundaries via splitter.
// Both boundaries cut before any zero-width markers at their weight; line
// breaks inside (a, b) are removed, ones at the boundaries are kept. Use
// DeleteRange to remove a range addressed by line positions.
func (r *Rope) DeleteRangeByWeight(a, b int, splitter LeafSplitter) error {
	total := widthOf(r.root)
	if a < 0 || b < a || b > total {
		return ErrInvalidIndex
	}
	if a == b {
		return nil
	}
	left, rest := splitByWeight(r.root, a, splitter)
	_, right := splitByWeight(rest, b-a, splitter)
	r.root = concatMerge(left, right)
	return nil
}

// DeleteRange removes everything between position (startRow, startCol)
// and position (endRow, endCol), exclusive of the end position. Line
// breaks inside the range are removed, merging the surrounding lines:
// deleting up to (endRow, 0) removes the Break and LineStart opening line
// endRow, while deleting up to (endRow-1, width) keeps them.
func (r *Rope) DeleteRange(startRow, startCol, endRow, endCol int, splitter LeafSplitter) error {
	if startRow < 0 || startCol < 0 ||
		startRow > endRow || (startRow == endRow && startCol > endCol) {
		return ErrInvalidIndex
	}
	if startRow == endRow && startCol == endCol {
		return nil
	}
	if r.root == nil {
		return ErrInvalidIndex
	}
	left, rest, err := splitAtPosition(r.root, startRow, startCol, splitter)
	if err != nil {
		return err
	}

	var right *node
	if endRow == startRow {
		_, right = splitByWeight(rest, endCol-startCol, splitter)
	} else {
		// rest begins inside line startRow, so the first LineStart it
		// contains opens line startRow+1.
		idx, ok := markerLookup(rest, endRow-startRow-1)
		if !ok {
			return ErrInvalidIndex
		}
		_, lineOn := splitByLeafIndex(rest, idx+1)
		if endCol == 0 {
			right = lineOn
		} else {
			_, right = splitByWeight(lineOn, endCol, splitter)
		}
	}
	r.root = concatMerge(left, right)
	return nil
}

// Clear drops the rope's content while keeping its undo/redo history: a
// root stored before the clear can still be restored. Content that is
// entirely zero-width (empty lines) cannot be addressed by weight, so
// this is the one content wipe DeleteRangeByWeight cannot express.
func (r *Rope) Clear() {
	r.root = nil
}

// MarkerLookup returns the segment index of the row-th LineStart marker.
// The index is stable against Segments()'s in-order flattening.
func (r *Rope) MarkerLookup(row int) (int, error) {
	if row < 0 {
		return 0, ErrInvalidIndex
	}
	idx, ok := markerLookup(r.root, row)
	if !ok {
		return 0, ErrInvalidIndex
	}
	return idx, nil
}

// WidthBeforeLine returns the total column width of everything preceding
// logical line row: the sum of the widths of lines 0..row-1. Line 0 always
// starts at width 0; later rows resolve through the marker index in
// O(log n).
func (r *Rope) WidthBeforeLine(row int) (int, error) {
	if row < 0 {
		return 0, ErrInvalidIndex
	}
	if row == 0 {
		return 0, nil
	}
	w, ok := markerPrefix(r.root, row)
	if !ok {
		return 0, ErrInvalidIndex
	}
	return w, nil
}

// WalkLineSegments invokes visit for each Text segment of logical line
// row, in order, stopping at the line's end (or when visit returns
// false). It descends to the line's marker in O(log n) and then walks
// only that line's leaves.
func (r *Rope) WalkLineSegments(row int, visit func(Segment) bool) error {
	idx, ok := markerLookup(r.root, row)
	if !ok {
		if row == 0 {
			// A rope with no markers at all is a single unmarked line.
			idx = -1
		} else {
			return ErrInvalidIndex
		}
	}
	walkFrom(r.root, idx+1, func(seg Segment) bool {
		if seg.Kind != KindText {
			return false
		}
		return visit(seg)
	})
	return nil
}

// WalkLinesAndSegments invokes visit once per segment in order, with the
// zero-based logical line index it belongs to. Walking stops early if visit
// returns false.
func (r *Rope) WalkLinesAndSegments(visit func(line int, seg Segment) bool) {
	line := -1
	walkInOrder(r.root, func(seg Segment) bool {
		if seg.Kind == KindLineStart {
			line++
		}
		return visit(line, seg)
	})
}
