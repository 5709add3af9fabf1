package view

import (
	"github.com/opentui/textengine/textbuffer"
	"github.com/opentui/textengine/width"
)

// glyph is one grapheme cluster of a logical line, already resolved to its
// display width, column, and active style id.
type glyph struct {
	text    string
	col     int
	byteEnd int
	w       int
	styleID uint32
}

// lineGlyphs walks row's text and resolved highlight spans together,
// producing one glyph per grapheme cluster.
func lineGlyphs(buf *textbuffer.Buffer, cfg width.Config, row int) ([]glyph, error) {
	text, err := buf.LineText(row)
	if err != nil {
		return nil, err
	}
	spans, err := buf.ResolveLineSpans(row)
	if err != nil {
		return nil, err
	}

	clusters := width.GraphemeClusters(text)
	glyphs := make([]glyph, 0, len(clusters))
	col, byteOff, spanIdx := 0, 0, 0
	for _, c := range clusters {
		var w int
		if c == "\t" {
			w = width.TabStop(col, cfg.TabSize()) - col
		} else {
			w = width.ClusterWidth(c, cfg)
		}
		for spanIdx < len(spans)-1 && col >= spans[spanIdx].NextCol {
			spanIdx++
		}
		styleID := uint32(0)
		if spanIdx < len(spans) {
			styleID = spans[spanIdx].StyleID
		}
		byteOff += len(c)
		glyphs = append(glyphs, glyph{text: c, col: col, byteEnd: byteOff, w: w, styleID: styleID})
		col += w
	}
	return glyphs, nil
}

// chunksFromGlyphs groups a contiguous run of glyphs into chunks, merging
// adjacent glyphs that share a style id into a single Chunk.
func chunksFromGlyphs(glyphs []glyph) []Chunk {
	var chunks []Chunk
	for _, g := range glyphs {
		if n := len(chunks); n > 0 && chunks[n-1].StyleID == g.styleID {
			chunks[n-1].Text += g.text
			chunks[n-1].Width += g.w
			continue
		}
		chunks = append(chunks, Chunk{
			Text:          g.text,
			GraphemeStart: g.col,
			Width:         g.w,
			StyleID:       g.styleID,
		})
	}
	return chunks
}

func widthOf(glyphs []glyph) int {
	total := 0
	for _, g := range glyphs {
		total += g.w
	}
	return total
}
