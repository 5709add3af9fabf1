package view

// ellipsis is the 3-column marker a truncated line shows between its
// prefix and suffix halves.
const ellipsis = "..."

// truncateLine replaces part's full chunk list with
// prefix + ellipsis + suffix, per the even split prefix_width = (W-3)/2,
// suffix_width = (W-3) - prefix_width; the ellipsis itself occupies the
// remaining 3 columns, so the truncated line fills the viewport exactly.
// Records where the ellipsis sits and the source column the suffix
// resumes at, so selection hit-testing can still map a click to either
// half.
func truncateLine(vl VirtualLine, part []glyph, wrapWidth int) VirtualLine {
	if wrapWidth < 3 {
		// Not even the ellipsis fits whole; show as much of it as does.
		vl.Chunks = []Chunk{{Text: ellipsis[:wrapWidth], GraphemeStart: -1, Width: wrapWidth}}
		vl.Width = wrapWidth
		vl.IsTruncated = true
		vl.EllipsisPos = 0
		vl.TruncationSuffixStart = 0
		return vl
	}

	budget := wrapWidth - 3
	prefixWidth := budget / 2
	suffixWidth := budget - prefixWidth

	prefixEnd := 0
	w := 0
	for prefixEnd < len(part) && w+part[prefixEnd].w <= prefixWidth {
		w += part[prefixEnd].w
		prefixEnd++
	}

	suffixStart := len(part)
	w = 0
	for suffixStart > prefixEnd && w+part[suffixStart-1].w <= suffixWidth {
		w += part[suffixStart-1].w
		suffixStart--
	}

	prefixGlyphs := part[:prefixEnd]
	suffixGlyphs := part[suffixStart:]

	chunks := chunksFromGlyphs(prefixGlyphs)
	ellipsisPos := widthOf(prefixGlyphs)
	chunks = append(chunks, Chunk{Text: ellipsis, GraphemeStart: -1, Width: 3})
	chunks = append(chunks, chunksFromGlyphs(suffixGlyphs)...)

	suffixSourceCol := 0
	if len(suffixGlyphs) > 0 {
		suffixSourceCol = suffixGlyphs[0].col
	} else if len(part) > 0 {
		suffixSourceCol = part[len(part)-1].col + part[len(part)-1].w
	}

	vl.Chunks = chunks
	vl.Width = ellipsisPos + 3 + widthOf(suffixGlyphs)
	vl.IsTruncated = true
	vl.EllipsisPos = ellipsisPos
	vl.TruncationSuffixStart = suffixSourceCol
	return vl
}
