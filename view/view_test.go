package view

import (
	"testing"

	"github.com/opentui/textengine/grapheme"
	"github.com/opentui/textengine/textbuffer"
	"github.com/opentui/textengine/width"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(text string) (*textbuffer.Buffer, *View) {
	buf := textbuffer.New(grapheme.New(), width.DefaultConfig())
	_ = buf.SetText([]byte(text))
	v := New(buf, width.DefaultConfig())
	return buf, v
}

func TestWrapNoneOneVirtualLinePerLogicalLine(t *testing.T) {
	_, v := newTestView("hello\nworld")
	vlines := v.VirtualLines()
	require.Len(t, vlines, 2)
	assert.Equal(t, 0, vlines[0].SourceLine)
	assert.Equal(t, 1, vlines[1].SourceLine)
}

func TestWrapCharSplitsAtColumnBoundary(t *testing.T) {
	_, v := newTestView("abcdefgh")
	v.SetWrapMode(WrapChar)
	v.SetWrapWidth(3)
	vlines := v.VirtualLines()
	require.Len(t, vlines, 3)
	assert.Equal(t, 3, vlines[0].Width)
	assert.Equal(t, 3, vlines[1].Width)
	assert.Equal(t, 2, vlines[2].Width)
}

func TestWrapCharNeverSplitsASingleWideGlyph(t *testing.T) {
	_, v := newTestView("a世b")
	v.SetWrapMode(WrapChar)
	v.SetWrapWidth(1)
	vlines := v.VirtualLines()
	// "a" alone, "世" (width 2, exceeds width 1 but stays whole), "b" alone.
	require.Len(t, vlines, 3)
	assert.Equal(t, 2, vlines[1].Width)
	require.Len(t, vlines[1].Chunks, 1)
	assert.Equal(t, "世", vlines[1].Chunks[0].Text)
}

func TestWrapWordPrefersLastBreakThatFits(t *testing.T) {
	_, v := newTestView("hello world foo")
	v.SetWrapMode(WrapWord)
	v.SetWrapWidth(11)
	vlines := v.VirtualLines()
	require.GreaterOrEqual(t, len(vlines), 2)
	assert.LessOrEqual(t, vlines[0].Width, 11)
}

func TestTruncationProducesEllipsisWithExpectedSplit(t *testing.T) {
	_, v := newTestView("abcdefghijklmnopqrstuvwxyz")
	v.SetTruncate(true)
	v.SetWrapWidth(10)
	vlines := v.VirtualLines()
	require.Len(t, vlines, 1)
	vl := vlines[0]
	assert.True(t, vl.IsTruncated)
	// budget = 10-3 = 7; prefix = 3, ellipsis = 3, suffix = 4
	assert.Equal(t, 3, vl.EllipsisPos)
	assert.Equal(t, 10, vl.Width, "truncated line fills the viewport exactly")
	middle := vl.Chunks[len(vl.Chunks)/2]
	assert.Equal(t, "...", middle.Text)
	assert.Equal(t, 3, middle.Width)
}

func TestTruncationSuffixResumesNearLineEnd(t *testing.T) {
	// Line width 20 into a viewport of 11: prefix (11-3)/2 = 4 columns,
	// suffix 4 columns resuming at source column 16.
	_, v := newTestView("abcdefghijklmnopqrst")
	v.SetTruncate(true)
	v.SetWrapWidth(11)
	vlines := v.VirtualLines()
	require.Len(t, vlines, 1)
	vl := vlines[0]
	require.True(t, vl.IsTruncated)
	assert.Equal(t, 4, vl.EllipsisPos)
	assert.Equal(t, 16, vl.TruncationSuffixStart)
	assert.Equal(t, 11, vl.Width)
	assert.Equal(t, "abcd", vl.Chunks[0].Text)
	assert.Equal(t, "qrst", vl.Chunks[len(vl.Chunks)-1].Text)
}

func TestFindVisualLineIndexHalfOpenExceptLastSubLine(t *testing.T) {
	_, v := newTestView("abcdefgh")
	v.SetWrapMode(WrapChar)
	v.SetWrapWidth(3)
	v.VirtualLines()

	idx, ok := v.FindVisualLineIndex(0, 2)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = v.FindVisualLineIndex(0, 3)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	// Column 8 sits exactly at the end of the final sub-line; it still
	// resolves there rather than overflowing.
	idx, ok = v.FindVisualLineIndex(0, 8)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestSelectionRangeNormalizesReversedDrag(t *testing.T) {
	_, v := newTestView("hello world")
	v.VirtualLines()
	v.SetAnchor(0, 8)
	v.UpdateFocus(0, 2)

	start, end, ok := v.SelectionRange()
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 8, end)
}

func TestSelectionAboveViewportClampsToStart(t *testing.T) {
	_, v := newTestView("a\nb\nc\nd\ne")
	v.SetViewport(2, 2)
	v.VirtualLines()

	v.SetAnchor(0, 0)
	assert.Equal(t, 0, v.sel.anchorOffset)
}

func TestMeasureForDimensionsCachesByEpochWidthAndMode(t *testing.T) {
	buf, v := newTestView("helloworld")
	v.SetWrapMode(WrapChar)
	d1 := v.MeasureForDimensions(5)
	assert.Equal(t, 2, d1.LineCount)

	// Same key: served from cache, same result.
	d2 := v.MeasureForDimensions(5)
	assert.Equal(t, d1, d2)

	// A narrower width is a different key and wraps into more lines.
	d3 := v.MeasureForDimensions(3)
	assert.Equal(t, 4, d3.LineCount)

	// Content edit bumps the epoch; the next measurement evicts the
	// stale-epoch entries rather than accumulating forever.
	require.NoError(t, buf.Append([]byte("!")))
	v.MeasureForDimensions(5)
	assert.Len(t, v.measureCache, 1)
}

func TestLineRangeReportsSubLineCount(t *testing.T) {
	_, v := newTestView("abcdefgh\nxy")
	v.SetWrapMode(WrapChar)
	v.SetWrapWidth(3)
	v.VirtualLines()

	first, count, ok := v.LineRange(0)
	require.True(t, ok)
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, count)

	first, count, ok = v.LineRange(1)
	require.True(t, ok)
	assert.Equal(t, 3, first)
	assert.Equal(t, 1, count)
}

func TestWrapCharEmojiTakesItsOwnLine(t *testing.T) {
	_, v := newTestView("a\U0001F600b")
	v.SetWrapMode(WrapChar)
	v.SetWrapWidth(2)
	vlines := v.VirtualLines()
	require.Len(t, vlines, 3)
	assert.Equal(t, 1, vlines[0].Width)
	assert.Equal(t, 2, vlines[1].Width)
	assert.Equal(t, 1, vlines[2].Width)
	require.Len(t, vlines[1].Chunks, 1)
	assert.Equal(t, "\U0001F600", vlines[1].Chunks[0].Text)
}

func TestLineCellsEncodesWideClustersThroughPool(t *testing.T) {
	buf, v := newTestView("a世b")
	cells, err := v.LineCells(0)
	require.NoError(t, err)
	require.Len(t, cells, 4) // a, 世 start, 世 continuation, b

	kind, r, _, _, _ := cells[0].Decode()
	assert.Equal(t, grapheme.KindScalar, kind)
	assert.Equal(t, 'a', r)

	kind, _, id, _, right := cells[1].Decode()
	assert.Equal(t, grapheme.KindGraphemeStart, kind)
	assert.Equal(t, uint8(1), right)
	assert.Equal(t, 2, cells[1].Width())

	kind, _, contID, left, _ := cells[2].Decode()
	assert.Equal(t, grapheme.KindContinuation, kind)
	assert.Equal(t, id, contID)
	assert.Equal(t, uint8(1), left)

	text, ok := v.CellCluster(cells[1])
	require.True(t, ok)
	assert.Equal(t, "世", text)

	rc, err := buf.Pool().Refcount(id)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), rc)

	v.ReleaseLineCells(cells)
	_, ok = v.CellCluster(cells[1])
	assert.False(t, ok, "a released id must read as not-present, not as another cluster")
}

func TestLineCellsReencodingSharesInternedID(t *testing.T) {
	buf, v := newTestView("世")
	first, err := v.LineCells(0)
	require.NoError(t, err)
	second, err := v.LineCells(0)
	require.NoError(t, err)

	_, _, id1, _, _ := first[0].Decode()
	_, _, id2, _, _ := second[0].Decode()
	assert.Equal(t, id1, id2, "interning must hand the same live id back")

	rc, err := buf.Pool().Refcount(id1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), rc)
}

func TestLineCellsExpandsTabs(t *testing.T) {
	buf := textbuffer.New(grapheme.New(), width.DefaultConfig().WithTabSize(4))
	require.NoError(t, buf.SetText([]byte("a\tb")))
	v := New(buf, width.DefaultConfig().WithTabSize(4))

	cells, err := v.LineCells(0)
	require.NoError(t, err)
	require.Len(t, cells, 5) // a, three blanks to column 4, b
	kind, r, _, _, _ := cells[1].Decode()
	assert.Equal(t, grapheme.KindScalar, kind)
	assert.Equal(t, ' ', r)
}
