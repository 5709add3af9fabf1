package style

// StyleRegistry hands out style ids for TextStyle values and notifies
// subscribers when it is destroyed. A Text Buffer holds only a weak
// back-reference to the registry it draws syntax styles from: the registry
// may be destroyed before the buffer, or the buffer before the registry,
// and neither side owns the other's lifetime.
type StyleRegistry struct {
	styles    map[uint32]TextStyle
	nextID    uint32
	onDestroy map[uint32]func()
	nextSubID uint32
	destroyed bool
}

// NewStyleRegistry creates an empty registry. Style id 0 is reserved for
// "no style" / default and is never handed out by Register.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{
		styles:    make(map[uint32]TextStyle),
		nextID:    1,
		onDestroy: make(map[uint32]func()),
	}
}

// Register assigns a fresh style id to ts and returns it.
func (r *StyleRegistry) Register(ts TextStyle) uint32 {
	id := r.nextID
	r.nextID++
	r.styles[id] = ts
	return id
}

// Resolve returns the TextStyle for id, or false if id is unknown (including
// id 0, the default style, and any id from a registry that has since been
// destroyed).
func (r *StyleRegistry) Resolve(id uint32) (TextStyle, bool) {
	if r.destroyed || id == 0 {
		return TextStyle{}, false
	}
	ts, ok := r.styles[id]
	return ts, ok
}

// OnDestroy subscribes fn to run when Destroy is called, and returns an
// unsubscribe function a buffer calls when it drops its reference to the
// registry first.
func (r *StyleRegistry) OnDestroy(fn func()) (unsubscribe func()) {
	subID := r.nextSubID
	r.nextSubID++
	r.onDestroy[subID] = fn
	return func() { delete(r.onDestroy, subID) }
}

// Destroy invokes every live subscriber and clears the registry. Resolve
// returns false for every id afterward.
func (r *StyleRegistry) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	for _, fn := range r.onDestroy {
		fn()
	}
	r.styles = nil
	r.onDestroy = nil
}

// Destroyed reports whether Destroy has already run.
func (r *StyleRegistry) Destroyed() bool {
	return r.destroyed
}
