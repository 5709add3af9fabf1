package rope

import "math/bits"

// node is one element of the rope's persistent weight-balanced tree.
// Leaves hold a single Segment; internal nodes hold the concatenation of
// their two children. Every node is immutable once built: edits produce
// new nodes along the edited path and reuse every untouched subtree,
// which is what makes StoreUndo an O(1) root-pointer snapshot instead of
// a copy of the whole content.
type node struct {
	leaf   bool
	seg    Segment
	left   *node
	right  *node
	depth  int
	length int // number of leaves (segments) in the subtree
	m      lineMetrics
}

func newLeaf(seg Segment) *node {
	return &node{leaf: true, seg: seg, length: 1, m: leafMetrics(seg)}
}

func widthOf(n *node) int {
	if n == nil {
		return 0
	}
	return n.m.totalWidth
}

func lengthOf(n *node) int {
	if n == nil {
		return 0
	}
	return n.length
}

// concatRaw joins two subtrees with no seam-merge check, rebalancing if
// the simplified depth invariant trips. It is the building block both
// the balanced bulk-build and the merge-aware concat use.
func concatRaw(a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	n := &node{
		left:   a,
		right:  b,
		depth:  maxInt(a.depth, b.depth) + 1,
		length: a.length + b.length,
		m:      mergeMetrics(a.m, b.m),
	}
	if !balanced(n.depth, n.length) {
		return rebuildBalanced(n)
	}
	return n
}

// balanced reports whether depth is acceptable for a subtree of the
// given leaf count. This is a simplified stand-in for the Fibonacci-based
// rebalance table classic rope implementations use: it bounds depth
// logarithmically in length without needing the full table, at the cost
// of triggering a rebuild somewhat earlier than the optimal bound would.
func balanced(depth, length int) bool {
	return depth <= 2*bits.Len(uint(length))+2
}

// rebuildBalanced flattens n's leaves and rebuilds a minimal-depth tree
// from them. Triggered only when concat's depth invariant trips, so its
// O(length) cost is amortized across the O(log n) concats that keep the
// tree balanced in between.
func rebuildBalanced(n *node) *node {
	leaves := make([]Segment, 0, n.length)
	collectLeaves(n, &leaves)
	return buildFromSlice(leaves)
}

func collectLeaves(n *node, out *[]Segment) {
	if n == nil {
		return
	}
	if n.leaf {
		*out = append(*out, n.seg)
		return
	}
	collectLeaves(n.left, out)
	collectLeaves(n.right, out)
}

// buildFromSlice builds a minimal-depth tree over segs via divide and
// conquer. Callers that may hand it segments adjacent to each other
// across the slice boundary should run mergeAdjacentSegs first.
func buildFromSlice(segs []Segment) *node {
	if len(segs) == 0 {
		return nil
	}
	if len(segs) == 1 {
		return newLeaf(segs[0])
	}
	mid := len(segs) / 2
	return concatRaw(buildFromSlice(segs[:mid]), buildFromSlice(segs[mid:]))
}

// mergeAdjacentSegs collapses adjacent mergeable Text segments within a
// single slice, the same seam-merge buildBalanced and concatMerge apply
// at tree boundaries.
func mergeAdjacentSegs(segs []Segment) []Segment {
	if len(segs) == 0 {
		return nil
	}
	out := make([]Segment, 0, len(segs))
	out = append(out, segs[0])
	for _, s := range segs[1:] {
		last := &out[len(out)-1]
		if last.mergeableWith(s) {
			last.ByteEnd = s.ByteEnd
			last.WidthCols += s.WidthCols
			continue
		}
		out = append(out, s)
	}
	return out
}

// buildBalanced builds a balanced tree over a freshly supplied slice of
// segments, merging any adjacent mergeable Text segments within it first.
func buildBalanced(segs []Segment) *node {
	return buildFromSlice(mergeAdjacentSegs(segs))
}

// popLast removes and returns the rightmost leaf of n, along with the
// tree that remains. ok is false only when n is nil.
func popLast(n *node) (rest *node, seg Segment, ok bool) {
	if n == nil {
		return nil, Segment{}, false
	}
	if n.leaf {
		return nil, n.seg, true
	}
	r, seg, ok := popLast(n.right)
	if !ok {
		return nil, Segment{}, false
	}
	return concatRaw(n.left, r), seg, true
}

// popFirst removes and returns the leftmost leaf of n, along with the
// tree that remains. ok is false only when n is nil.
func popFirst(n *node) (seg Segment, rest *node, ok bool) {
	if n == nil {
		return Segment{}, nil, false
	}
	if n.leaf {
		return n.seg, nil, true
	}
	seg, l, ok := popFirst(n.left)
	if !ok {
		return Segment{}, nil, false
	}
	return seg, concatRaw(l, n.right), true
}

// concatMerge joins two subtrees, collapsing the single new seam between
// them into one Text leaf when a's last segment and b's first segment
// are adjacent and mergeable. Only the seam introduced by this concat is
// considered: both a and b are assumed to already satisfy the rope's
// standing invariant that no two adjacent leaves are independently
// mergeable.
func concatMerge(a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	aRest, aLast, aok := popLast(a)
	bFirst, bRest, bok := popFirst(b)
	if aok && bok && aLast.mergeableWith(bFirst) {
		merged := aLast
		merged.ByteEnd = bFirst.ByteEnd
		merged.WidthCols += bFirst.WidthCols
		return concatRaw(concatRaw(aRest, newLeaf(merged)), bRest)
	}
	return concatRaw(a, b)
}

// splitByWeight splits n into the subtree of the first weight columns and
// the subtree of the rest, splitting a straddling Text leaf via splitter.
// Either half may be nil if the split falls at an edge. Zero-width
// segments sitting exactly at the split point land on the right half;
// callers that need them on the left (splicing at the start of a line
// rather than the end of the previous one) address the position through
// the marker index via splitAtPosition instead.
func splitByWeight(n *node, weight int, splitter LeafSplitter) (left, right *node) {
	if n == nil {
		return nil, nil
	}
	if n.leaf {
		l, r := splitLeafAt(n.seg, weight, splitter)
		return leafOrNil(l), leafOrNil(r)
	}
	lw := widthOf(n.left)
	if weight <= lw {
		ll, lr := splitByWeight(n.left, weight, splitter)
		return ll, concatMerge(lr, n.right)
	}
	rl, rr := splitByWeight(n.right, weight-lw, splitter)
	return concatMerge(n.left, rl), rr
}

// splitByLeafIndex splits n into its first idx leaves and the rest. It
// cuts at an existing leaf boundary, so no leaf splitting or seam merging
// is involved.
func splitByLeafIndex(n *node, idx int) (left, right *node) {
	if n == nil {
		return nil, nil
	}
	if idx <= 0 {
		return nil, n
	}
	if idx >= n.length {
		return n, nil
	}
	if idx <= n.left.length {
		ll, lr := splitByLeafIndex(n.left, idx)
		return ll, concatRaw(lr, n.right)
	}
	rl, rr := splitByLeafIndex(n.right, idx-n.left.length)
	return concatRaw(n.left, rl), rr
}

// splitAtPosition splits n at column col of logical line row. Unlike a
// pure weight split, the position names a side of the zero-width markers
// at a line boundary exactly: (row, 0) cuts after line row's LineStart,
// (row-1, width) cuts before the preceding Break, even though both share
// one weight. col must not exceed line row's width.
func splitAtPosition(n *node, row, col int, splitter LeafSplitter) (left, right *node, err error) {
	idx, ok := markerLookup(n, row)
	if !ok {
		// A tree with no LineStart markers is a single unmarked line;
		// only row 0 addresses it, by pure weight.
		if row == 0 {
			l, r := splitByWeight(n, col, splitter)
			return l, r, nil
		}
		return nil, nil, ErrInvalidIndex
	}
	pre, lineOn := splitByLeafIndex(n, idx+1)
	if col == 0 {
		return pre, lineOn, nil
	}
	mid, post := splitByWeight(lineOn, col, splitter)
	return concatRaw(pre, mid), post, nil
}

func leafOrNil(seg *Segment) *node {
	if seg == nil {
		return nil
	}
	if seg.Kind == KindText && seg.Width() == 0 {
		return nil
	}
	return newLeaf(*seg)
}

func walkInOrder(n *node, f func(Segment) bool) bool {
	if n == nil {
		return true
	}
	if n.leaf {
		return f(n.seg)
	}
	if !walkInOrder(n.left, f) {
		return false
	}
	return walkInOrder(n.right, f)
}

// markerLookup returns the in-order leaf index of the row-th LineStart.
func markerLookup(n *node, row int) (int, bool) {
	if n == nil {
		return 0, false
	}
	if n.leaf {
		if n.seg.Kind == KindLineStart && row == 0 {
			return 0, true
		}
		return 0, false
	}
	if row < n.left.m.lineStarts {
		return markerLookup(n.left, row)
	}
	idx, ok := markerLookup(n.right, row-n.left.m.lineStarts)
	if !ok {
		return 0, false
	}
	return n.left.length + idx, true
}

// markerPrefix returns the total column width of every segment preceding
// the row-th LineStart, accumulated during the same descent markerLookup
// makes.
func markerPrefix(n *node, row int) (weight int, ok bool) {
	if n == nil {
		return 0, false
	}
	if n.leaf {
		if n.seg.Kind == KindLineStart && row == 0 {
			return 0, true
		}
		return 0, false
	}
	if row < n.left.m.lineStarts {
		return markerPrefix(n.left, row)
	}
	w, ok := markerPrefix(n.right, row-n.left.m.lineStarts)
	if !ok {
		return 0, false
	}
	return n.left.m.totalWidth + w, true
}

// walkFrom visits leaves in order starting at in-order leaf index skip.
func walkFrom(n *node, skip int, f func(Segment) bool) bool {
	if n == nil || skip >= n.length {
		return true
	}
	if n.leaf {
		return f(n.seg)
	}
	if skip < n.left.length {
		if !walkFrom(n.left, skip, f) {
			return false
		}
		return walkInOrder(n.right, f)
	}
	return walkFrom(n.right, skip-n.left.length, f)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
