// Package grapheme implements the Grapheme Pool: an interning slab
// allocator mapping grapheme-cluster byte sequences to compact 26-bit ids
// with generation-based stale-reference detection and reference counting.
// A Pool may be shared across Text Buffers in the same single-threaded
// execution context; it carries no locking.
package grapheme

// classSizes are the five size classes a grapheme cluster's bytes are
// rounded up into. MaxClusterBytes (128) is the largest representable
// cluster; longer sequences (pathological ZWJ chains) are rejected.
var classSizes = [5]int{8, 16, 32, 64, 128}

// MaxClusterBytes is the size of the largest size class.
const MaxClusterBytes = 128

type slot struct {
	data       [MaxClusterBytes]byte
	borrowed   []byte
	length     uint16
	refcount   uint32
	generation uint8
	owned      bool
	inUse      bool
}

func (s *slot) bytes() []byte {
	if s.owned {
		return s.data[:s.length]
	}
	return s.borrowed
}

type class struct {
	size  int
	slots []slot
	free  []uint16
}

// Pool is a slab allocator over five fixed size classes, with an intern
// map so that interning the same owned byte content twice returns the same
// live id instead of allocating a duplicate slot.
type Pool struct {
	classes [5]class
	intern  map[string]ID
}

// New creates an empty Pool.
func New() *Pool {
	p := &Pool{intern: make(map[string]ID)}
	for i, size := range classSizes {
		p.classes[i] = class{size: size}
	}
	return p
}

// classForSize returns the smallest size class fitting n bytes, or -1 if n
// exceeds the largest class.
func classForSize(n int) int {
	for i, size := range classSizes {
		if n <= size {
			return i
		}
	}
	return -1
}

// Alloc interns owned bytes, copying them into a pool-owned slot. If the
// exact content is already live in the intern map, its id is returned with
// its refcount incremented instead of allocating a new slot.
func (p *Pool) Alloc(data []byte) (ID, error) {
	if len(data) > MaxClusterBytes {
		return 0, ErrOutOfMemory
	}

	if id, ok := p.lookupIntern(data); ok {
		p.increfValidated(id)
		return id, nil
	}

	classIdx := classForSize(len(data))
	slotIdx, err := p.acquireSlot(classIdx)
	if err != nil {
		return 0, err
	}
	s := &p.classes[classIdx].slots[slotIdx]
	s.owned = true
	s.length = uint16(len(data))
	copy(s.data[:], data)
	s.refcount = 1
	s.inUse = true

	id := newID(uint8(classIdx), s.generation, slotIdx)
	p.intern[string(data)] = id
	return id, nil
}

// AllocUnowned records a reference to caller-owned storage without copying.
// The caller must keep data valid until every reference is released via
// Decref. Unowned allocations are never added to the intern map: distinct
// AllocUnowned calls over equal content are never deduplicated.
func (p *Pool) AllocUnowned(data []byte) (ID, error) {
	if len(data) > MaxClusterBytes {
		return 0, ErrOutOfMemory
	}
	classIdx := classForSize(len(data))
	slotIdx, err := p.acquireSlot(classIdx)
	if err != nil {
		return 0, err
	}
	s := &p.classes[classIdx].slots[slotIdx]
	s.owned = false
	s.borrowed = data
	s.length = uint16(len(data))
	s.refcount = 1
	s.inUse = true
	return newID(uint8(classIdx), s.generation, slotIdx), nil
}

// acquireSlot returns a free slot index in classIdx, growing the class's
// slot slice when its free list is empty.
func (p *Pool) acquireSlot(classIdx int) (uint16, error) {
	if classIdx < 0 {
		return 0, ErrOutOfMemory
	}
	c := &p.classes[classIdx]
	if n := len(c.free); n > 0 {
		idx := c.free[n-1]
		c.free = c.free[:n-1]
		return idx, nil
	}
	if len(c.slots) >= slotMask+1 {
		return 0, ErrOutOfMemory
	}
	c.slots = append(c.slots, slot{})
	return uint16(len(c.slots) - 1), nil
}

// lookupIntern validates a cached intern-map entry, purging it silently if
// the slot has since been freed, reused under a different generation, or no
// longer holds matching content.
func (p *Pool) lookupIntern(data []byte) (ID, bool) {
	id, ok := p.intern[string(data)]
	if !ok {
		return 0, false
	}
	s, err := p.slotFor(id)
	if err != nil || !s.owned || s.refcount == 0 || string(s.bytes()) != string(data) {
		delete(p.intern, string(data))
		return 0, false
	}
	return id, true
}

// slotFor validates id against the pool's live slots and returns the
// backing slot, or ErrWrongGeneration / ErrInvalidID.
func (p *Pool) slotFor(id ID) (*slot, error) {
	classIdx := int(id.Class())
	if classIdx < 0 || classIdx >= len(p.classes) {
		return nil, ErrInvalidID
	}
	c := &p.classes[classIdx]
	slotIdx := id.Slot()
	if int(slotIdx) >= len(c.slots) {
		return nil, ErrInvalidID
	}
	s := &c.slots[slotIdx]
	if s.generation != id.Generation() {
		return nil, ErrWrongGeneration
	}
	if !s.inUse {
		return nil, ErrInvalidID
	}
	return s, nil
}

// Get returns the bytes interned under id.
func (p *Pool) Get(id ID) ([]byte, error) {
	s, err := p.slotFor(id)
	if err != nil {
		return nil, err
	}
	return s.bytes(), nil
}

// Refcount returns the current reference count for id.
func (p *Pool) Refcount(id ID) (uint32, error) {
	s, err := p.slotFor(id)
	if err != nil {
		return 0, err
	}
	return s.refcount, nil
}

// Incref increments id's reference count.
func (p *Pool) Incref(id ID) error {
	s, err := p.slotFor(id)
	if err != nil {
		return err
	}
	p.incref(s)
	return nil
}

func (p *Pool) increfValidated(id ID) {
	s, err := p.slotFor(id)
	if err == nil {
		p.incref(s)
	}
}

func (p *Pool) incref(s *slot) {
	s.refcount++
}

// Decref decrements id's reference count. When the count reaches zero, the
// slot is returned to its class's free list, its generation advances (mod
// GenerationPeriod), and, for owned entries, its intern-map entry is
// removed.
func (p *Pool) Decref(id ID) error {
	s, err := p.slotFor(id)
	if err != nil {
		return err
	}
	if s.refcount == 0 {
		return nil
	}
	s.refcount--
	if s.refcount == 0 {
		p.release(int(id.Class()), id.Slot(), s)
	}
	return nil
}

// FreeUnreferenced releases a slot whose refcount is already zero, e.g.
// after a failed post-Alloc fixup left it allocated but unreferenced.
func (p *Pool) FreeUnreferenced(id ID) error {
	s, err := p.slotFor(id)
	if err != nil {
		return err
	}
	if s.refcount != 0 {
		return nil
	}
	p.release(int(id.Class()), id.Slot(), s)
	return nil
}

func (p *Pool) release(classIdx int, slotIdx uint16, s *slot) {
	if s.owned {
		delete(p.intern, string(s.bytes()))
	}
	s.owned = false
	s.borrowed = nil
	s.length = 0
	s.inUse = false
	s.generation = uint8((int(s.generation) + 1) % GenerationPeriod)
	p.classes[classIdx].free = append(p.classes[classIdx].free, slotIdx)
}
