package textbuffer

import (
	"github.com/opentui/textengine/rope"
	"github.com/opentui/textengine/width"
)

// segmentLines scans data for line breaks and produces the LineStart/
// Text/Break segment sequence for it, with each Text segment's width
// precomputed. CR, LF, and CRLF all normalize to a single Break; offsetBase
// is added to every byte offset recorded, so data can be a sub-slice of a
// larger mem-registered buffer.
func segmentLines(memID uint8, data []byte, offsetBase int, cfg width.Config) []rope.Segment {
	var out []rope.Segment
	lineStart := 0
	n := len(data)

	emitLine := func(start, end int) {
		out = append(out, rope.NewLineStart())
		if end > start {
			text := data[start:end]
			w, ascii := chunkWidth(text, 0, cfg)
			out = append(out, rope.NewText(memID, offsetBase+start, offsetBase+end, w, textFlags(ascii)))
		}
	}

	i := 0
	for i < n {
		switch data[i] {
		case '\n':
			emitLine(lineStart, i)
			out = append(out, rope.NewBreak())
			i++
			lineStart = i
		case '\r':
			emitLine(lineStart, i)
			out = append(out, rope.NewBreak())
			i++
			if i < n && data[i] == '\n' {
				i++
			}
			lineStart = i
		default:
			i++
		}
	}
	emitLine(lineStart, n)

	return out
}
