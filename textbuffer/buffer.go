// Package textbuffer implements the Text Buffer: a rope of segments over a
// memory registry, carrying styled content, per-line highlight spans, and
// the coordinate queries and range extraction a view or editor reads from.
package textbuffer

import (
	"fmt"
	"os"

	"github.com/opentui/textengine/grapheme"
	"github.com/opentui/textengine/memreg"
	"github.com/opentui/textengine/rope"
	"github.com/opentui/textengine/style"
	"github.com/opentui/textengine/width"
)

// viewRegistration is the non-owning handle a view holds; the buffer
// notifies it of dirtying edits and of its own teardown.
type viewRegistration struct {
	onDirty   func(epoch uint64)
	onDestroy func()
}

// Buffer is the Text Buffer: rope content plus the memory registry it
// draws bytes from, an optional weak reference to a syntax style registry,
// and per-line highlight ranges.
type Buffer struct {
	mem      *memreg.Registry
	pool     *grapheme.Pool
	r        *rope.Rope
	splitter *leafSplitter
	cfg      width.Config

	contentEpoch uint64

	highlights map[int][]Highlight
	spanCache  map[int][]StyleSpan

	styleReg       *style.StyleRegistry
	styleUnsub     func()
	batchDepth     int
	batchDirtyLine map[int]bool

	views map[int]viewRegistration
	nextV int

	addBuf *addBuffer
}

// New creates an empty buffer backed by pool for grapheme interning,
// configured with cfg's tab width and East-Asian-width policy.
func New(pool *grapheme.Pool, cfg width.Config) *Buffer {
	mem := memreg.New()
	b := &Buffer{
		mem:        mem,
		pool:       pool,
		r:          rope.New(),
		cfg:        cfg,
		highlights: make(map[int][]Highlight),
		spanCache:  make(map[int][]StyleSpan),
		views:      make(map[int]viewRegistration),
	}
	b.splitter = &leafSplitter{mem: mem, cfg: cfg}
	return b
}

// Epoch returns the buffer's current content epoch. It increments on every
// content-mutating operation.
func (b *Buffer) Epoch() uint64 {
	return b.contentEpoch
}

// Pool returns the grapheme pool the buffer's display output interns
// multi-byte clusters in. The pool may be shared across buffers; it must
// outlive every buffer handed to it.
func (b *Buffer) Pool() *grapheme.Pool {
	return b.pool
}

func (b *Buffer) bumpEpoch() {
	b.contentEpoch++
	b.spanCache = make(map[int][]StyleSpan)
	for _, v := range b.views {
		if v.onDirty != nil {
			v.onDirty(b.contentEpoch)
		}
	}
}

// RegisterView attaches a non-owning view handle. onDirty fires after every
// content-mutating edit; onDestroy fires once, when the buffer itself is
// torn down via Reset. The returned function unregisters the
// handle; a view must call it before it is itself destroyed.
func (b *Buffer) RegisterView(onDirty func(epoch uint64), onDestroy func()) (unregister func()) {
	id := b.nextV
	b.nextV++
	b.views[id] = viewRegistration{onDirty: onDirty, onDestroy: onDestroy}
	return func() { delete(b.views, id) }
}

// SetSyntaxStyle attaches a weak back-reference to a style registry; styles
// named by highlight style ids resolve through it. Passing nil clears the
// reference. The buffer never owns the registry's lifetime: if the
// registry is destroyed first, the buffer's reference clears itself via
// the registry's destroy-callback subscription.
func (b *Buffer) SetSyntaxStyle(reg *style.StyleRegistry) {
	if b.styleUnsub != nil {
		b.styleUnsub()
		b.styleUnsub = nil
	}
	b.styleReg = reg
	if reg != nil {
		b.styleUnsub = reg.OnDestroy(func() {
			b.styleReg = nil
			b.styleUnsub = nil
		})
	}
}

// SyntaxStyle returns the attached style registry, or nil if none is set.
func (b *Buffer) SyntaxStyle() *style.StyleRegistry {
	return b.styleReg
}

// SetTabWidth clamps w to an even number ≥ 2 and dirties every registered
// view, since every chunk's precomputed width may change.
func (b *Buffer) SetTabWidth(w int) {
	b.cfg = b.cfg.WithTabSize(w)
	b.splitter.cfg = b.cfg
	b.rebuildFromText()
}

// SetText replaces the buffer's entire content with bytes, registering them
// as a freshly owned memory buffer.
func (b *Buffer) SetText(data []byte) error {
	owned := append([]byte(nil), data...)
	id, err := b.mem.Register(owned, true)
	if err != nil {
		return err
	}
	b.r = rope.New()
	segs := segmentLines(id, owned, 0, b.cfg)
	if err := b.r.InsertSliceByWeight(0, segs, b.splitter); err != nil {
		return err
	}
	b.highlights = make(map[int][]Highlight)
	b.bumpEpoch()
	return nil
}

// Append adds data to the end of the buffer's content, continuing the
// current last logical line rather than starting a new one if the buffer
// does not already end on a line break.
func (b *Buffer) Append(data []byte) error {
	owned := append([]byte(nil), data...)
	id, err := b.mem.Register(owned, true)
	if err != nil {
		return err
	}
	segs := segmentLines(id, owned, 0, b.cfg)
	if b.r.Len() > 0 && len(segs) > 0 && segs[0].Kind == rope.KindLineStart {
		segs = segs[1:]
	}
	lastRow := b.LineCount() - 1
	lastCol, _ := b.LineWidthAt(lastRow)
	if err := b.r.InsertSliceAt(lastRow, lastCol, segs, b.splitter); err != nil {
		return err
	}
	b.bumpEpoch()
	return nil
}

// SetTextFromMemID replaces the buffer's content with segments referencing
// an already-registered mem buffer, without copying its bytes.
func (b *Buffer) SetTextFromMemID(id uint8) error {
	buf, err := b.mem.Get(id)
	if err != nil {
		return ErrInvalidMemID
	}
	b.r = rope.New()
	segs := segmentLines(id, buf, 0, b.cfg)
	if err := b.r.InsertSliceByWeight(0, segs, b.splitter); err != nil {
		return err
	}
	b.highlights = make(map[int][]Highlight)
	b.bumpEpoch()
	return nil
}

// LoadFile reads path and sets it as the buffer's content.
func (b *Buffer) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIoError, err)
	}
	return b.SetText(data)
}

// Clear empties the buffer's text but keeps the memory registry and the
// rope's undo history intact: it clears through the rope's own content
// wipe rather than allocating a fresh rope, so a prior StoreUndo still
// has a root to restore.
func (b *Buffer) Clear() error {
	b.r.Clear()
	b.highlights = make(map[int][]Highlight)
	b.bumpEpoch()
	return nil
}

// Reset tears the buffer down completely: text, memory registry, undo
// history, highlights, and the attached style registry reference. Every
// registered view is notified via onDestroy.
func (b *Buffer) Reset() {
	b.r = rope.New()
	b.mem = memreg.New()
	b.splitter = &leafSplitter{mem: b.mem, cfg: b.cfg}
	b.highlights = make(map[int][]Highlight)
	b.spanCache = make(map[int][]StyleSpan)
	if b.styleUnsub != nil {
		b.styleUnsub()
		b.styleUnsub = nil
	}
	b.styleReg = nil
	for _, v := range b.views {
		if v.onDestroy != nil {
			v.onDestroy()
		}
	}
	b.views = make(map[int]viewRegistration)
	b.addBuf = nil
	b.contentEpoch++
}

// rebuildFromText re-segments the buffer's current text under the current
// width config, e.g. after SetTabWidth changes how tabs and wide clusters
// measure.
func (b *Buffer) rebuildFromText() {
	text, _ := b.GetPlainTextInto(nil)
	_ = b.SetText(text)
}
