package spanfeed

import "fmt"

// EventKind identifies the kind of Event delivered to a subscribed Handler.
// Values match the native wire enumeration.
type EventKind int

const (
	// EventChunkAdded fires when the pool grows a new chunk.
	EventChunkAdded EventKind = 2
	// EventClosed fires once Close has fully taken effect.
	EventClosed EventKind = 5
	// EventError fires when a handler raised an error or panicked during a
	// previous dispatch pass.
	EventError EventKind = 6
	// EventDataAvailable fires after Commit/CommitReserved, carrying the
	// number of spans currently queued in the ring.
	EventDataAvailable EventKind = 7
	// EventStateBuffer fires after any refcount change, carrying a
	// snapshot of the whole state buffer.
	EventStateBuffer EventKind = 8
)

// Event is delivered to every subscribed Handler in registration order.
// Only the fields relevant to Kind are populated; the rest are zero.
type Event struct {
	Kind        EventKind
	ChunkIndex  int     // EventChunkAdded
	Count       int     // EventDataAvailable: ring.len() at emit time
	StateBuffer []uint8 // EventStateBuffer: snapshot, safe to retain
	Err         error   // EventError
}

// Handler receives Stream events. A Handler may return an error (or panic,
// which is recovered) without aborting dispatch to the other subscribed
// handlers; see Stream.LastHandlerError.
type Handler func(Event) error

// Subscribe registers fn to receive future events. On attach, the stream
// immediately replays its current state: an EventChunkAdded for every
// existing chunk, an EventStateBuffer snapshot, and an EventDataAvailable
// if spans are already queued, so a late subscriber starts from the
// stream's real state rather than an empty picture. The
// returned unsubscribe function removes fn; it is safe to call more than
// once.
func (s *Stream) Subscribe(fn Handler) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.handlers = append(s.handlers, subscription{id: id, fn: fn})

	var replay []Event
	for i := range s.chunks {
		replay = append(replay, Event{Kind: EventChunkAdded, ChunkIndex: i})
	}
	replay = append(replay, Event{Kind: EventStateBuffer, StateBuffer: s.snapshotStateBufferLocked()})
	if n := s.ring.len(); n > 0 {
		replay = append(replay, Event{Kind: EventDataAvailable, Count: n})
	}
	s.mu.Unlock()

	for _, ev := range replay {
		_ = safeCall(fn, ev)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.handlers {
			if sub.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				break
			}
		}
	}
}

func (s *Stream) snapshotStateBufferLocked() []uint8 {
	out := make([]uint8, len(s.stateBuffer))
	copy(out, s.stateBuffer)
	return out
}

// dispatch invokes every subscribed handler with ev, in registration
// order. Handlers run after the caller has released s.mu, so state
// mutation is always serialized with respect to event delivery and a
// handler that calls back into a producer API acquires the lock cleanly
// instead of observing an in-progress mutation.
func (s *Stream) dispatch(ev Event) {
	s.mu.Lock()
	handlers := make([]subscription, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	var firstErr error
	for _, sub := range handlers {
		if err := safeCall(sub.fn, ev); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		s.mu.Lock()
		s.lastHandlerErr = firstErr
		s.mu.Unlock()
		errEv := Event{Kind: EventError, Err: firstErr}
		for _, sub := range handlers {
			_ = safeCall(sub.fn, errEv)
		}
	}
}

func safeCall(h Handler, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("spanfeed: handler panic: %v", r)
		}
	}()
	return h(ev)
}
