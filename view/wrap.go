package view

import (
	"github.com/opentui/textengine/textbuffer"
	"github.com/opentui/textengine/width"
)

// buildVirtualLines re-derives the full virtual line list and the
// per-logical-line {first, count} ranges from scratch.
func buildVirtualLines(buf *textbuffer.Buffer, cfg width.Config, mode WrapMode, wrapWidth int, truncate bool) ([]VirtualLine, []lineRange) {
	lineCount := buf.LineCount()
	vlines := make([]VirtualLine, 0, lineCount)
	ranges := make([]lineRange, lineCount)
	charOffset := 0

	for row := 0; row < lineCount; row++ {
		glyphs, err := lineGlyphs(buf, cfg, row)
		if err != nil {
			continue
		}
		first := len(vlines)

		var sub [][]glyph
		switch mode {
		case WrapNone:
			sub = [][]glyph{glyphs}
		case WrapChar:
			sub = wrapChar(glyphs, wrapWidth)
		case WrapWord:
			text, _ := buf.LineText(row)
			sub = wrapWord(glyphs, text, wrapWidth)
		default:
			sub = [][]glyph{glyphs}
		}

		colOffset := 0
		for _, part := range sub {
			vl := VirtualLine{
				Chunks:          chunksFromGlyphs(part),
				Width:           widthOf(part),
				CharOffset:      charOffset,
				SourceLine:      row,
				SourceColOffset: colOffset,
			}
			if mode == WrapNone && truncate && wrapWidth < vl.Width {
				vl = truncateLine(vl, part, wrapWidth)
			}
			vlines = append(vlines, vl)
			charOffset += vl.Width + 1
			if len(part) > 0 {
				colOffset = part[len(part)-1].col + part[len(part)-1].w
			}
		}
		ranges[row] = lineRange{first: first, count: len(vlines) - first}
	}
	return vlines, ranges
}

// wrapChar hard-wraps glyphs at wrapWidth column boundaries. A glyph wider
// than wrapWidth by itself never splits: it becomes its own line.
func wrapChar(glyphs []glyph, wrapWidth int) [][]glyph {
	if len(glyphs) == 0 {
		return [][]glyph{{}}
	}
	var out [][]glyph
	start := 0
	lineWidth := 0
	for i, g := range glyphs {
		if lineWidth > 0 && lineWidth+g.w > wrapWidth {
			out = append(out, glyphs[start:i])
			start = i
			lineWidth = 0
		}
		lineWidth += g.w
	}
	out = append(out, glyphs[start:])
	return out
}

// wrapWord wraps at UAX #14-like word break positions, preferring the last
// break that fits. If none fits and no glyph has been placed yet on the
// current virtual line, it falls back to a character wrap for that one
// line.
func wrapWord(glyphs []glyph, text string, wrapWidth int) [][]glyph {
	if len(glyphs) == 0 {
		return [][]glyph{{}}
	}
	breakAfterIdx := wordBreakGlyphIndices(glyphs, text)

	var out [][]glyph
	start := 0
	lineWidth := 0
	lastBreak := -1
	i := 0
	for i < len(glyphs) {
		g := glyphs[i]
		if lineWidth > 0 && lineWidth+g.w > wrapWidth {
			if lastBreak > start {
				out = append(out, glyphs[start:lastBreak])
				start = lastBreak
				lineWidth = 0
				for _, carried := range glyphs[start:i] {
					lineWidth += carried.w
				}
			} else {
				out = append(out, glyphs[start:i])
				start = i
				lineWidth = 0
			}
			lastBreak = -1
			continue
		}
		lineWidth += g.w
		if breakAfterIdx[i] {
			lastBreak = i + 1
		}
		i++
	}
	out = append(out, glyphs[start:])
	return out
}

// wordBreakGlyphIndices marks, for each glyph index, whether a word break
// falls immediately after that glyph.
func wordBreakGlyphIndices(glyphs []glyph, text string) []bool {
	marks := make([]bool, len(glyphs))
	breaks := width.WordBreaks(text)
	if len(breaks) == 0 {
		return marks
	}
	bi := 0
	for gi, g := range glyphs {
		for bi < len(breaks) && breaks[bi].ByteOffset <= g.byteEnd {
			if breaks[bi].ByteOffset == g.byteEnd {
				marks[gi] = true
			}
			bi++
		}
	}
	return marks
}
