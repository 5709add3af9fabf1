package rope

// Metrics aggregates the quantities a caller needs without walking every
// segment: total display width, total byte count, number of logical lines,
// and the widest logical line.
type Metrics struct {
	TotalWidth   int
	TotalBytes   int
	LineCount    int
	MaxLineWidth int
}

// lineMetrics is the augmentation carried by every tree node so a node's
// metrics can be derived from its two children's metrics alone, without
// rescanning either subtree. A "closed" line is one whose Break has
// already been seen inside the subtree; prefix and suffix track the open
// runs at the two edges so an ancestor can close the seam once it sees
// what lies on the other side.
//
// prefix is the width of the run from the subtree's first segment up to
// its first reset (LineStart or Break); suffix is the width of the run
// from its last reset to its last segment. hasReset records whether the
// subtree contains a reset at all; when it doesn't, prefix == suffix ==
// totalWidth and the whole subtree is one open run.
type lineMetrics struct {
	totalWidth int
	totalBytes int
	lineStarts int
	maxClosed  int
	prefix     int
	suffix     int
	hasReset   bool
}

func leafMetrics(seg Segment) lineMetrics {
	switch seg.Kind {
	case KindLineStart:
		return lineMetrics{lineStarts: 1, hasReset: true}
	case KindBreak:
		return lineMetrics{hasReset: true}
	default:
		w, b := seg.Width(), seg.ByteLen()
		return lineMetrics{totalWidth: w, totalBytes: b, prefix: w, suffix: w}
	}
}

// mergeMetrics combines a left and right subtree's metrics into their
// concatenation's metrics, closing the line that spans the seam between
// them when the right side carries a reset.
func mergeMetrics(l, r lineMetrics) lineMetrics {
	maxClosed := l.maxClosed
	if r.maxClosed > maxClosed {
		maxClosed = r.maxClosed
	}
	if r.hasReset {
		if seam := l.suffix + r.prefix; seam > maxClosed {
			maxClosed = seam
		}
	}

	prefix := l.prefix
	if !l.hasReset {
		prefix = l.totalWidth + r.prefix
	}
	suffix := r.suffix
	if !r.hasReset {
		suffix = r.totalWidth + l.suffix
	}

	return lineMetrics{
		totalWidth: l.totalWidth + r.totalWidth,
		totalBytes: l.totalBytes + r.totalBytes,
		lineStarts: l.lineStarts + r.lineStarts,
		maxClosed:  maxClosed,
		prefix:     prefix,
		suffix:     suffix,
		hasReset:   l.hasReset || r.hasReset,
	}
}

// toMetrics flushes the trailing open run: the last line is counted
// toward MaxLineWidth by its own end even without a trailing Break,
// matching the rope's historical flat-scan behavior.
func (m lineMetrics) toMetrics() Metrics {
	maxLine := m.maxClosed
	if m.suffix > maxLine {
		maxLine = m.suffix
	}
	return Metrics{
		TotalWidth:   m.totalWidth,
		TotalBytes:   m.totalBytes,
		LineCount:    m.lineStarts,
		MaxLineWidth: maxLine,
	}
}
