package textbuffer

// AddHighlight registers a highlight range on logical line.
func (b *Buffer) AddHighlight(line, colStart, colEnd int, styleID uint32, priority int, ref uint64) {
	b.highlights[line] = append(b.highlights[line], Highlight{
		ColStart: colStart,
		ColEnd:   colEnd,
		StyleID:  styleID,
		Priority: priority,
		Ref:      ref,
	})
	b.dirtyLine(line)
}

// RemoveHighlightsByRef removes every highlight across all lines tagged
// with ref.
func (b *Buffer) RemoveHighlightsByRef(ref uint64) {
	for line, hls := range b.highlights {
		kept := hls[:0]
		changed := false
		for _, h := range hls {
			if h.Ref == ref {
				changed = true
				continue
			}
			kept = append(kept, h)
		}
		if changed {
			if len(kept) == 0 {
				delete(b.highlights, line)
			} else {
				b.highlights[line] = kept
			}
			b.dirtyLine(line)
		}
	}
}

// ClearLineHighlights removes every highlight on one line.
func (b *Buffer) ClearLineHighlights(line int) {
	if _, ok := b.highlights[line]; ok {
		delete(b.highlights, line)
		b.dirtyLine(line)
	}
}

// ClearAllHighlights removes every highlight on every line.
func (b *Buffer) ClearAllHighlights() {
	for line := range b.highlights {
		b.dirtyLine(line)
	}
	b.highlights = make(map[int][]Highlight)
}

// BeginBatch defers highlight span rebuilds until the matching Commit,
// coalescing a burst of Add/Remove calls (e.g. a syntax-highlighter pass)
// into a single recompute per touched line. Calls nest.
func (b *Buffer) BeginBatch() {
	if b.batchDepth == 0 {
		b.batchDirtyLine = make(map[int]bool)
	}
	b.batchDepth++
}

// CommitBatch ends the innermost BeginBatch. Once the outermost batch
// commits, every line touched during the batch has its cached spans
// invalidated so the next ResolveLineSpans call rebuilds them.
func (b *Buffer) CommitBatch() {
	if b.batchDepth == 0 {
		return
	}
	b.batchDepth--
	if b.batchDepth == 0 {
		for line := range b.batchDirtyLine {
			delete(b.spanCache, line)
		}
		b.batchDirtyLine = nil
	}
}

func (b *Buffer) dirtyLine(line int) {
	if b.batchDepth > 0 {
		b.batchDirtyLine[line] = true
		return
	}
	delete(b.spanCache, line)
}

// ResolveLineSpans returns the resolved, coalesced style spans for line,
// consulting a per-line cache populated on first request after the line
// was last dirtied.
func (b *Buffer) ResolveLineSpans(line int) ([]StyleSpan, error) {
	if cached, ok := b.spanCache[line]; ok {
		return cached, nil
	}
	w, err := b.LineWidthAt(line)
	if err != nil {
		return nil, err
	}
	spans := resolveLineHighlights(b.highlights[line], w)
	b.spanCache[line] = spans
	return spans, nil
}
