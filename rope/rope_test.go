package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// byteSplitter treats every byte as one column, matching test fixture text
// that is pure ASCII.
type byteSplitter struct{}

func (byteSplitter) SplitText(seg Segment, weight int) (left, right Segment) {
	mid := seg.ByteStart + weight
	left = NewText(seg.MemID, seg.ByteStart, mid, weight, seg.Flags)
	right = NewText(seg.MemID, mid, seg.ByteEnd, seg.Width()-weight, seg.Flags)
	return left, right
}

func buildLine(memID uint8, start, end int) []Segment {
	return []Segment{
		NewLineStart(),
		NewText(memID, start, end, end-start, FlagASCIIOnly),
	}
}

func TestInsertSliceByWeightAppendsAtEnd(t *testing.T) {
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, buildLine(0, 0, 5), byteSplitter{}))
	assert.Equal(t, 5, r.Metrics().TotalWidth)
	assert.Equal(t, 1, r.Metrics().LineCount)
}

func TestInsertSliceByWeightSplitsMidSegment(t *testing.T) {
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, buildLine(0, 0, 5), byteSplitter{}))

	require.NoError(t, r.InsertSliceByWeight(2, []Segment{NewText(0, 100, 103, 3, FlagASCIIOnly)}, byteSplitter{}))
	assert.Equal(t, 8, r.Metrics().TotalWidth)
}

func TestDeleteRangeByWeight(t *testing.T) {
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, buildLine(0, 0, 5), byteSplitter{}))
	require.NoError(t, r.DeleteRangeByWeight(1, 4, byteSplitter{}))
	assert.Equal(t, 2, r.Metrics().TotalWidth)
}

func TestMarkerLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, buildLine(0, 0, 3), byteSplitter{}))

	segs := []Segment{NewBreak()}
	segs = append(segs, buildLine(0, 3, 6)...)
	require.NoError(t, r.InsertSliceByWeight(r.Metrics().TotalWidth, segs, byteSplitter{}))

	idx, err := r.MarkerLookup(1)
	require.NoError(t, err)
	assert.Equal(t, KindLineStart, r.Segments()[idx].Kind)
}

func TestMarkerLookupOutOfRange(t *testing.T) {
	r := New()
	_, err := r.MarkerLookup(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestWalkLinesAndSegmentsAssignsLineIndices(t *testing.T) {
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, buildLine(0, 0, 3), byteSplitter{}))
	segs := []Segment{NewBreak()}
	segs = append(segs, buildLine(0, 3, 6)...)
	require.NoError(t, r.InsertSliceByWeight(r.Metrics().TotalWidth, segs, byteSplitter{}))

	var lines []int
	r.WalkLinesAndSegments(func(line int, seg Segment) bool {
		if seg.Kind == KindText {
			lines = append(lines, line)
		}
		return true
	})
	assert.Equal(t, []int{0, 1}, lines)
}

func TestUndoRedoRestoresPriorState(t *testing.T) {
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, buildLine(0, 0, 5), byteSplitter{}))

	r.StoreUndo("edit")
	require.NoError(t, r.InsertSliceByWeight(5, []Segment{NewText(0, 100, 105, 5, FlagASCIIOnly)}, byteSplitter{}))
	assert.Equal(t, 10, r.Metrics().TotalWidth)

	label, ok := r.Undo()
	require.True(t, ok)
	assert.Equal(t, "edit", label)
	assert.Equal(t, 5, r.Metrics().TotalWidth)

	_, ok = r.Redo()
	require.True(t, ok)
	assert.Equal(t, 10, r.Metrics().TotalWidth)
}

func TestClearHistoryDropsUndoAndRedo(t *testing.T) {
	r := New()
	r.StoreUndo("edit")
	r.ClearHistory()
	assert.False(t, r.CanUndo())
	assert.False(t, r.CanRedo())
}

func TestAdjacentContiguousTextSegmentsMerge(t *testing.T) {
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, []Segment{
		NewLineStart(),
		NewText(0, 0, 2, 2, FlagASCIIOnly),
	}, byteSplitter{}))
	require.NoError(t, r.InsertSliceByWeight(2, []Segment{NewText(0, 2, 5, 3, FlagASCIIOnly)}, byteSplitter{}))

	textSegs := 0
	for _, s := range r.Segments() {
		if s.Kind == KindText {
			textSegs++
		}
	}
	assert.Equal(t, 1, textSegs)
}

// lineWidths sums each logical line's Text widths by walking the rope.
func lineWidths(r *Rope) []int {
	var widths []int
	r.WalkLinesAndSegments(func(line int, seg Segment) bool {
		for line >= len(widths) {
			widths = append(widths, 0)
		}
		widths[line] += seg.Width()
		return true
	})
	return widths
}

func buildTwoLines(t *testing.T) *Rope {
	t.Helper()
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, buildLine(0, 0, 2), byteSplitter{})) // "ab"
	segs := []Segment{NewBreak()}
	segs = append(segs, buildLine(0, 2, 4)...) // "cd"
	require.NoError(t, r.InsertSliceByWeight(2, segs, byteSplitter{}))
	return r
}

func TestInsertSliceAtLineStartLandsAfterMarkers(t *testing.T) {
	r := buildTwoLines(t)

	// Column weight 2 is both "end of line 0" and "start of line 1"; the
	// position form must land the text on line 1, after the Break and
	// LineStart, not attach it to line 0.
	require.NoError(t, r.InsertSliceAt(1, 0, []Segment{NewText(0, 100, 101, 1, FlagASCIIOnly)}, byteSplitter{}))
	assert.Equal(t, []int{2, 3}, lineWidths(r))
}

func TestInsertSliceAtLineEndStaysOnThatLine(t *testing.T) {
	r := buildTwoLines(t)
	require.NoError(t, r.InsertSliceAt(0, 2, []Segment{NewText(0, 100, 101, 1, FlagASCIIOnly)}, byteSplitter{}))
	assert.Equal(t, []int{3, 2}, lineWidths(r))
}

func TestInsertSliceAtDistinguishesEmptyLines(t *testing.T) {
	// "a" / "" / "" / "b": three boundaries share the weight after "a".
	r := New()
	segs := buildLine(0, 0, 1)
	segs = append(segs, NewBreak(), NewLineStart())
	segs = append(segs, NewBreak(), NewLineStart())
	segs = append(segs, NewBreak())
	segs = append(segs, buildLine(0, 1, 2)...)
	require.NoError(t, r.InsertSliceByWeight(0, segs, byteSplitter{}))
	require.Equal(t, []int{1, 0, 0, 1}, lineWidths(r))

	require.NoError(t, r.InsertSliceAt(2, 0, []Segment{NewText(0, 100, 101, 1, FlagASCIIOnly)}, byteSplitter{}))
	assert.Equal(t, []int{1, 0, 1, 1}, lineWidths(r))
}

func TestDeleteRangeAcrossBreakMergesLines(t *testing.T) {
	r := buildTwoLines(t)
	require.NoError(t, r.DeleteRange(0, 1, 1, 1, byteSplitter{}))
	assert.Equal(t, []int{2}, lineWidths(r))
	assert.Equal(t, 1, r.Metrics().LineCount)
}

func TestDeleteRangeOfJustTheBreak(t *testing.T) {
	r := buildTwoLines(t)
	require.NoError(t, r.DeleteRange(0, 2, 1, 0, byteSplitter{}))
	assert.Equal(t, []int{4}, lineWidths(r))
	assert.Equal(t, 1, r.Metrics().LineCount)
}

func TestDeleteRangeRemovesExactlyOneEmptyLine(t *testing.T) {
	r := New()
	segs := buildLine(0, 0, 1)
	segs = append(segs, NewBreak(), NewLineStart())
	segs = append(segs, NewBreak(), NewLineStart())
	segs = append(segs, NewBreak())
	segs = append(segs, buildLine(0, 1, 2)...)
	require.NoError(t, r.InsertSliceByWeight(0, segs, byteSplitter{}))

	require.NoError(t, r.DeleteRange(1, 0, 2, 0, byteSplitter{}))
	assert.Equal(t, []int{1, 0, 1}, lineWidths(r))
	assert.Equal(t, 3, r.Metrics().LineCount)
}

func TestClearKeepsHistory(t *testing.T) {
	r := New()
	require.NoError(t, r.InsertSliceByWeight(0, buildLine(0, 0, 5), byteSplitter{}))
	r.StoreUndo("edit")
	r.Clear()
	assert.Equal(t, 0, r.Metrics().TotalWidth)
	assert.Equal(t, 0, r.Len())

	_, ok := r.Undo()
	require.True(t, ok)
	assert.Equal(t, 5, r.Metrics().TotalWidth)
}
