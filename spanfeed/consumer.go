package spanfeed

// Drain copies up to len(out) queued SpanInfo records into out, in commit
// order, removing them from the ring. It returns how many were copied.
// Drained spans still hold a reference (their chunk's state buffer entry
// stays nonzero) until the consumer calls MarkConsumed.
func (s *Stream) Drain(out []SpanInfo) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.drain(out)
}

// SpanBytes resolves span to the underlying bytes. The returned slice
// aliases the stream's chunk storage and is only valid until the span is
// marked consumed.
func (s *Stream) SpanBytes(span SpanInfo) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.chunks[span.ChunkIndex]
	return c.data[span.Offset : span.Offset+span.Len]
}

// MarkConsumed decrements span's chunk's refcount now that the consumer
// has finished with it. When the count reaches zero every span that chunk
// held has been consumed, and the chunk becomes eligible for the producer
// to reset and reuse. If a Close is queued and this was the last
// outstanding reference, the close finalizes.
func (s *Stream) MarkConsumed(span SpanInfo) {
	s.mu.Lock()
	s.stateBuffer[span.ChunkIndex] = satDecr(s.stateBuffer[span.ChunkIndex])
	ev := Event{Kind: EventStateBuffer, StateBuffer: s.snapshotStateBufferLocked()}
	closeEv, closing := s.maybeFinalizeCloseLocked()
	s.mu.Unlock()

	s.dispatch(ev)
	if closing {
		s.dispatch(closeEv)
	}
}

// BeginAsync extends span's chunk reference for an asynchronous handler
// that has not yet settled: an async handler extends its chunk's
// refcount until it settles. The caller
// must invoke the returned done func exactly once, on success or failure,
// allSettled-style; done marks the span consumed and, if this was the
// stream's last outstanding async handler and a Close is queued, finalizes
// it.
func (s *Stream) BeginAsync(span SpanInfo) (done func()) {
	s.mu.Lock()
	s.asyncPending++
	s.mu.Unlock()

	var once bool
	return func() {
		if once {
			return
		}
		once = true
		s.MarkConsumed(span)
		s.mu.Lock()
		s.asyncPending--
		closeEv, closing := s.maybeFinalizeCloseLocked()
		s.mu.Unlock()
		if closing {
			s.dispatch(closeEv)
		}
	}
}

// Close flushes any pending span and marks the stream closed, rejecting
// further writes at once. If an async handler (BeginAsync) has not yet
// settled, finalizing the close (EventClosed) is queued until the last
// one settles; a dispatch in progress does not defer it.
func (s *Stream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	ev, ok := s.commitActiveLocked()
	s.closeQueued = true
	closeEv, closing := s.maybeFinalizeCloseLocked()
	s.mu.Unlock()

	if ok {
		s.dispatch(ev)
	}
	if closing {
		s.dispatch(closeEv)
	}
	return nil
}

// maybeFinalizeCloseLocked finalizes a queued close once no async handler
// is outstanding. Must be called with s.mu held; dispatches after
// unlocking, as with every other mutator.
func (s *Stream) maybeFinalizeCloseLocked() (Event, bool) {
	if !s.closeQueued || s.closed || s.asyncPending > 0 {
		return Event{}, false
	}
	s.closed = true
	return Event{Kind: EventClosed}, true
}

// Destroy releases the stream's chunks and subscriber list. It does not
// implicitly Close; callers that want the Closed event first should call
// Close and wait for it to settle before Destroy.
func (s *Stream) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
	s.stateBuffer = nil
	s.ring = nil
	s.handlers = nil
	s.closeQueued = true
	s.closed = true
}
