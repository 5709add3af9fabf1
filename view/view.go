package view

import (
	"github.com/opentui/textengine/textbuffer"
	"github.com/opentui/textengine/width"
)

type lineRange struct {
	first int
	count int
}

// View is the Text Buffer View: given a buffer, a wrap mode and width, a
// viewport, and a truncate flag, it produces the ordered list of virtual
// lines a renderer draws, rebuilding lazily whenever the buffer's content
// epoch moves past what the view last saw.
type View struct {
	buf        *textbuffer.Buffer
	cfg        width.Config
	unregister func()

	wrapMode  WrapMode
	wrapWidth int
	truncate  bool

	viewportTop    int
	viewportHeight int

	builtEpoch uint64
	built      bool
	vlines     []VirtualLine
	lineRanges []lineRange

	measureCache map[measureKey]measureResult

	sel Selection
}

// New creates a view over buf. cfg supplies the width/tab policy used to
// measure text; it should match the config the buffer itself was created
// with.
func New(buf *textbuffer.Buffer, cfg width.Config) *View {
	v := &View{
		buf:            buf,
		cfg:            cfg,
		wrapMode:       WrapNone,
		wrapWidth:      80,
		viewportHeight: -1,
		measureCache:   make(map[measureKey]measureResult),
	}
	v.unregister = buf.RegisterView(func(uint64) { v.invalidate() }, func() { v.invalidate() })
	return v
}

// Close detaches the view from its buffer. A view must call this before it
// is itself discarded.
func (v *View) Close() {
	if v.unregister != nil {
		v.unregister()
		v.unregister = nil
	}
}

func (v *View) invalidate() {
	v.built = false
}

// SetWrapMode changes how logical lines wrap and invalidates the cached
// virtual lines.
func (v *View) SetWrapMode(m WrapMode) {
	if v.wrapMode == m {
		return
	}
	v.wrapMode = m
	v.invalidate()
}

// SetWrapWidth changes the column width wrap decisions are made against.
func (v *View) SetWrapWidth(w int) {
	if w < 1 {
		w = 1
	}
	if v.wrapWidth == w {
		return
	}
	v.wrapWidth = w
	v.invalidate()
}

// SetTruncate toggles ellipsis truncation for wrap mode none.
func (v *View) SetTruncate(t bool) {
	if v.truncate == t {
		return
	}
	v.truncate = t
	v.invalidate()
}

// SetViewport sets the first visible virtual line and the number of
// visible rows. A negative height means "unbounded" (no viewport clip).
func (v *View) SetViewport(top, height int) {
	if top < 0 {
		top = 0
	}
	v.viewportTop = top
	v.viewportHeight = height
}

// WrapMode returns the current wrap mode.
func (v *View) WrapMode() WrapMode { return v.wrapMode }

// WrapWidth returns the current wrap width.
func (v *View) WrapWidth() int { return v.wrapWidth }

// ensureBuilt rebuilds the virtual line cache if the buffer's content
// epoch has moved since the last build, or if this is the first build.
func (v *View) ensureBuilt() {
	epoch := v.buf.Epoch()
	if v.built && epoch == v.builtEpoch {
		return
	}
	v.vlines, v.lineRanges = buildVirtualLines(v.buf, v.cfg, v.wrapMode, v.wrapWidth, v.truncate)
	v.builtEpoch = epoch
	v.built = true
}

// VirtualLines returns every virtual line, ignoring the viewport.
func (v *View) VirtualLines() []VirtualLine {
	v.ensureBuilt()
	return v.vlines
}

// VisibleLines returns the virtual lines within the current viewport.
func (v *View) VisibleLines() []VirtualLine {
	v.ensureBuilt()
	if v.viewportHeight < 0 {
		return v.vlines
	}
	top := v.viewportTop
	if top > len(v.vlines) {
		top = len(v.vlines)
	}
	end := top + v.viewportHeight
	if end > len(v.vlines) {
		end = len(v.vlines)
	}
	return v.vlines[top:end]
}

// LineRange returns the {first virtual line, count} a logical line expands
// to under the current wrap settings.
func (v *View) LineRange(logicalLine int) (first, count int, ok bool) {
	v.ensureBuilt()
	if logicalLine < 0 || logicalLine >= len(v.lineRanges) {
		return 0, 0, false
	}
	r := v.lineRanges[logicalLine]
	return r.first, r.count, true
}
