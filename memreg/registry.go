// Package memreg implements the Memory Registry: a small bounded table
// mapping an 8-bit mem-id to an owned-or-borrowed byte slice. A Text Buffer
// holds exactly one Registry for its lifetime; Segment Rope Text leaves
// reference bytes indirectly through a mem-id rather than embedding slices,
// so splitting and merging leaves never copies buffer content.
package memreg

import "errors"

// MaxEntries is the hard cap on live registrations: the full 8-bit
// mem-id addressing space.
const MaxEntries = 256

// ErrFull is returned by Register when the registry already holds
// MaxEntries live entries.
var ErrFull = errors.New("memreg: registry full")

// ErrUnknownID is returned by Get/Replace for an id that was never
// registered (or was registered in a different Registry instance). Callers
// on hot paths should treat this as a programmer error.
var ErrUnknownID = errors.New("memreg: unknown mem-id")

type entry struct {
	bytes []byte
	owned bool
	live  bool
}

// Registry owns a bounded table of byte buffers, addressed by an 8-bit id
// that is stable for the registry's lifetime. Registration is append-only:
// ids are never reused for distinct content, though the bytes behind an id
// may be Replace'd.
type Registry struct {
	entries [MaxEntries]entry
	count   int
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds owned or borrowed bytes and returns the assigned mem-id.
// When owned is true, the registry frees bytes on Destroy or Replace.
func (r *Registry) Register(bytes []byte, owned bool) (uint8, error) {
	if r.count >= MaxEntries {
		return 0, ErrFull
	}
	for id := 0; id < MaxEntries; id++ {
		if !r.entries[id].live {
			r.entries[id] = entry{bytes: bytes, owned: owned, live: true}
			r.count++
			return uint8(id), nil
		}
	}
	return 0, ErrFull
}

// Get returns the bytes registered under id. The returned slice aliases the
// registry's storage; callers must not retain it past the next Replace.
func (r *Registry) Get(id uint8) ([]byte, error) {
	e := &r.entries[id]
	if !e.live {
		return nil, ErrUnknownID
	}
	return e.bytes, nil
}

// Owned reports whether id's bytes are owned by the registry.
func (r *Registry) Owned(id uint8) (bool, error) {
	e := &r.entries[id]
	if !e.live {
		return false, ErrUnknownID
	}
	return e.owned, nil
}

// Replace swaps the bytes registered under id, dropping the prior contents
// if they were owned. The id itself, and its owned flag, are unchanged;
// pass owned explicitly via ReplaceOwned to also change ownership.
func (r *Registry) Replace(id uint8, bytes []byte) error {
	e := &r.entries[id]
	if !e.live {
		return ErrUnknownID
	}
	e.bytes = bytes
	return nil
}

// ReplaceOwned swaps both the bytes and the owned flag registered under id.
func (r *Registry) ReplaceOwned(id uint8, bytes []byte, owned bool) error {
	e := &r.entries[id]
	if !e.live {
		return ErrUnknownID
	}
	e.bytes = bytes
	e.owned = owned
	return nil
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	return r.count
}

// Destroy tears the registry down, dropping references to every owned
// buffer. Go's garbage collector reclaims owned byte slices once nothing
// else references them; Destroy exists to make that point explicit and to
// invalidate every id registered before it (Get reports ErrUnknownID for
// them afterward): a registry is torn down together
// with the buffer that owns it, never before.
func (r *Registry) Destroy() {
	for i := range r.entries {
		r.entries[i] = entry{}
	}
	r.count = 0
}
