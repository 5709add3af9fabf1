package textbuffer

import (
	"github.com/opentui/textengine/rope"
	"github.com/opentui/textengine/width"
)

// segmentForInsert segments data the same way segmentLines does, then
// drops the leading LineStart segmentLines always produces: an insert
// continues whatever logical line the rope splice lands in rather than
// starting a fresh one.
func segmentForInsert(memID uint8, data []byte, offsetBase int, cfg width.Config) []rope.Segment {
	segs := segmentLines(memID, data, offsetBase, cfg)
	if len(segs) > 0 && segs[0].Kind == rope.KindLineStart {
		segs = segs[1:]
	}
	return segs
}

// InsertAt splices data into the buffer at the given global column offset
// (as defined by GetLength/OffsetToCoords), recording undo history first.
func (b *Buffer) InsertAt(offset int, data []byte) error {
	row, col, err := b.OffsetToCoords(offset)
	if err != nil {
		return err
	}
	return b.InsertAtCoords(row, col, data)
}

// InsertAtCoords splices data into logical line row at display column col.
// An insert at (row, 0) lands at the start of line row, not the end of the
// line above it; the underlying rope addresses the position through its
// line markers, so the two are distinct even though they share a column
// weight.
func (b *Buffer) InsertAtCoords(row, col int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	b.r.StoreUndo("edit")
	id, start, _, err := b.appendToAddBuffer(data)
	if err != nil {
		return err
	}
	var segs []rope.Segment
	if b.r.Len() == 0 {
		// The first insert also opens the first logical line; later
		// inserts continue whatever line they land in.
		segs = segmentLines(id, data, start, b.cfg)
	} else {
		segs = segmentForInsert(id, data, start, b.cfg)
	}
	if err := b.r.InsertSliceAt(row, col, segs, b.splitter); err != nil {
		return err
	}
	b.bumpEpoch()
	return nil
}

// DeleteColRange deletes the global column range [start, end), normalizing
// a reversed range, and returns the text that was removed. A line break
// inside the range counts as one column and its removal merges the lines
// around it.
func (b *Buffer) DeleteColRange(start, end int) (string, error) {
	if start > end {
		start, end = end, start
	}
	startRow, startCol, err := b.OffsetToCoords(start)
	if err != nil {
		return "", err
	}
	endRow, endCol, err := b.OffsetToCoords(end)
	if err != nil {
		return "", err
	}
	return b.DeleteRangeByCoords(startRow, startCol, endRow, endCol)
}

// DeleteRangeByCoords deletes from (startRow, startCol) to (endRow,
// endCol), normalizing a reversed range, and returns the removed text.
func (b *Buffer) DeleteRangeByCoords(startRow, startCol, endRow, endCol int) (string, error) {
	if startRow > endRow || (startRow == endRow && startCol > endCol) {
		startRow, startCol, endRow, endCol = endRow, endCol, startRow, startCol
	}
	deleted, err := b.GetTextRangeByCoords(startRow, startCol, endRow, endCol)
	if err != nil {
		return "", err
	}
	b.r.StoreUndo("edit")
	if err := b.r.DeleteRange(startRow, startCol, endRow, endCol, b.splitter); err != nil {
		return "", err
	}
	b.bumpEpoch()
	return deleted, nil
}

// StoreUndo records the buffer's current content under label before a
// caller-managed mutation that doesn't go through InsertAt/DeleteColRange.
func (b *Buffer) StoreUndo(label string) {
	b.r.StoreUndo(label)
}

// Undo restores the buffer's content to the prior stored snapshot, bumping
// the content epoch so registered views re-measure. ok is false if there
// was nothing to undo.
func (b *Buffer) Undo() (label string, ok bool) {
	label, ok = b.r.Undo()
	if ok {
		b.bumpEpoch()
	}
	return label, ok
}

// Redo reapplies the most recently undone snapshot.
func (b *Buffer) Redo() (label string, ok bool) {
	label, ok = b.r.Redo()
	if ok {
		b.bumpEpoch()
	}
	return label, ok
}

// CanUndo reports whether Undo would do anything.
func (b *Buffer) CanUndo() bool { return b.r.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (b *Buffer) CanRedo() bool { return b.r.CanRedo() }
