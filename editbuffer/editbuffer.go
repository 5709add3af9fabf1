package editbuffer

import (
	"github.com/opentui/textengine/textbuffer"
	"github.com/opentui/textengine/width"
)

// MovementValidator can reject a cursor move from one position to another,
// e.g. to keep the cursor out of a read-only span.
type MovementValidator func(from, to Cursor) bool

// BoundaryHitHandler is notified when a move is attempted but blocked,
// either by a MovementValidator or by the buffer's own edge.
type BoundaryHitHandler func(attempted Cursor, reason string)

// EditBuffer drives a textbuffer.Buffer with a live cursor: inserts,
// deletes, grapheme- and word-aware motion, and undo/redo, all kept
// consistent with the buffer's own coordinate system.
type EditBuffer struct {
	buf    *textbuffer.Buffer
	cfg    width.Config
	cursor Cursor

	lastDeleted   string
	hasLastDelete bool

	Validator   MovementValidator
	BoundaryHit BoundaryHitHandler

	OnCursorChanged  func(from, to Cursor)
	OnContentChanged func()
}

// New creates an edit buffer over buf, with the cursor at (0, 0).
func New(buf *textbuffer.Buffer, cfg width.Config) *EditBuffer {
	return &EditBuffer{buf: buf, cfg: cfg}
}

// Buffer returns the underlying text buffer.
func (e *EditBuffer) Buffer() *textbuffer.Buffer { return e.buf }

// Cursor returns the current cursor position.
func (e *EditBuffer) Cursor() Cursor { return e.cursor }

// LastDeleted returns the most recently deleted text and whether any
// delete has happened yet.
func (e *EditBuffer) LastDeleted() (string, bool) {
	return e.lastDeleted, e.hasLastDelete
}

// setCursor updates the cursor, recomputes its cached offset, and fires
// OnCursorChanged if the position actually moved.
func (e *EditBuffer) setCursor(row, col int, stickyCol bool) {
	from := e.cursor
	offset, _ := e.buf.CoordsToOffset(row, col)
	to := Cursor{Row: row, Col: col, Offset: offset}
	if stickyCol {
		to.DesiredCol = e.cursor.DesiredCol
	} else {
		to.DesiredCol = col
	}
	e.cursor = to
	if !from.Equals(to) && e.OnCursorChanged != nil {
		e.OnCursorChanged(from, to)
	}
}

func (e *EditBuffer) notifyContentChanged() {
	if e.OnContentChanged != nil {
		e.OnContentChanged()
	}
}

// tryMove runs attempted through the validator (if any) before applying
// it, firing BoundaryHit when blocked.
func (e *EditBuffer) tryMove(to Cursor, reason string, stickyCol bool) bool {
	from := e.cursor
	if e.Validator != nil && !e.Validator(from, to) {
		if e.BoundaryHit != nil {
			e.BoundaryHit(to, reason)
		}
		return false
	}
	e.setCursor(to.Row, to.Col, stickyCol)
	return true
}
