package textbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAtMidLineDoesNotStartNewLogicalLine(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("ac")))
	require.NoError(t, b.InsertAt(1, []byte("b")))

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "abc", string(text))
	assert.Equal(t, 1, b.LineCount())
}

func TestInsertAtWithEmbeddedBreakSplitsLine(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("ac")))
	require.NoError(t, b.InsertAt(1, []byte("X\nY")))

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "aX\nYc", string(text))
	assert.Equal(t, 2, b.LineCount())
}

func TestDeleteColRangeReturnsRemovedTextAndNormalizesOrder(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("hello world")))

	deleted, err := b.DeleteColRange(6, 11)
	require.NoError(t, err)
	assert.Equal(t, "world", deleted)

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "hello ", string(text))
}

func TestUndoRedoRestoresContentAfterInsert(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("hello")))

	require.NoError(t, b.InsertAt(5, []byte(" world")))
	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "hello world", string(text))

	require.True(t, b.CanUndo())
	_, ok := b.Undo()
	require.True(t, ok)
	text, _ = b.GetPlainTextInto(nil)
	assert.Equal(t, "hello", string(text))

	require.True(t, b.CanRedo())
	_, ok = b.Redo()
	require.True(t, ok)
	text, _ = b.GetPlainTextInto(nil)
	assert.Equal(t, "hello world", string(text))
}

func TestAddBufferSwitchesSlabOnOverflow(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText(nil))

	first := make([]byte, addBufferCapacity-1)
	for i := range first {
		first[i] = 'a'
	}
	require.NoError(t, b.InsertAt(0, first))
	firstID := b.addBuf.id

	require.NoError(t, b.InsertAt(b.GetLength(), []byte("bb")))
	assert.NotEqual(t, firstID, b.addBuf.id)
}

func TestInsertAtCoordsLineStartStaysOnThatLine(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("ab\ncd")))
	require.NoError(t, b.InsertAtCoords(1, 0, []byte("X")))

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "ab\nXcd", string(text))
}

func TestInsertAtOffsetCountsBreakColumns(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("ab\ncd")))
	// Offsets: a=0 b=1 break=2 c=3 d=4; offset 4 is between c and d.
	require.NoError(t, b.InsertAt(4, []byte("X")))

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "ab\ncXd", string(text))
}

func TestInsertIntoEmptyBufferOpensFirstLine(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.InsertAt(0, []byte("hi")))

	assert.Equal(t, 1, b.LineCount())
	w, err := b.LineWidthAt(0)
	require.NoError(t, err)
	assert.Equal(t, 2, w)
	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "hi", string(text))
}

func TestDeleteColRangeAcrossNewlineMergesLines(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("abc\ndef")))

	deleted, err := b.DeleteColRange(2, 5)
	require.NoError(t, err)
	assert.Equal(t, "c\nd", deleted)

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "abef", string(text))
	assert.Equal(t, 1, b.LineCount())
}

func TestDeleteColRangeOfJustTheBreak(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("abc\ndef")))

	deleted, err := b.DeleteColRange(3, 4)
	require.NoError(t, err)
	assert.Equal(t, "\n", deleted)

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "abcdef", string(text))
}

func TestDeleteColRangeRemovesExactlyOneEmptyLine(t *testing.T) {
	b := newTestBuffer()
	require.NoError(t, b.SetText([]byte("foo\n\nbar")))
	require.Equal(t, 3, b.LineCount())

	deleted, err := b.DeleteColRange(4, 5)
	require.NoError(t, err)
	assert.Equal(t, "\n", deleted)

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "foo\nbar", string(text))
	assert.Equal(t, 2, b.LineCount())
}
