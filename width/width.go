// Package width computes terminal display-column widths and grapheme-cluster
// segmentation for arbitrary UTF-8 text, and locates the word-boundary
// positions used by wrap and word-navigation callers.
//
// Performance is tiered:
// uniwidth handles the common case (ASCII, CJK, simple emoji) at O(1)/O(log n),
// falling back to uniseg grapheme clustering only for ZWJ sequences, emoji
// modifiers, and combining marks.
package width

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// wcwidthCond measures with the POSIX wcwidth convention: East-Asian
// Ambiguous codepoints are wide, matching CJK locale terminals.
var wcwidthCond = &runewidth.Condition{EastAsianWidth: true}

// runeWidth dispatches a single rune's width to the configured method.
func runeWidth(r rune, cfg Config) int {
	if cfg.Method() == MethodWCWidth {
		return wcwidthCond.RuneWidth(r)
	}
	return uniwidth.RuneWidthWithOptions(r, uniwidth.WithEastAsianAmbiguous(cfg.EastAsianAmbiguous()))
}

// stringWidth dispatches a string's width to the configured method.
func stringWidth(s string, cfg Config) int {
	if cfg.Method() == MethodWCWidth {
		return wcwidthCond.StringWidth(s)
	}
	return uniwidth.StringWidthWithOptions(s, uniwidth.WithEastAsianAmbiguous(cfg.EastAsianAmbiguous()))
}

// StringWidth returns the visual width of s in terminal columns, honoring
// cfg's East-Asian-Ambiguous treatment. Tabs are NOT expanded here: tab
// expansion depends on the column the tab starts at, see WidthWithTabs.
func StringWidth(s string, cfg Config) int {
	if s == "" {
		return 0
	}
	if !containsComplexUnicode(s) {
		return stringWidth(s, cfg)
	}
	total := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		total += ClusterWidth(gr.Str(), cfg)
	}
	return total
}

// WidthWithTabs returns the display width of s when rendered starting at
// column startCol, expanding '\t' to the next multiple of cfg.TabSize().
// It returns the total width consumed, not the final column (callers add
// startCol themselves when they need an absolute column).
func WidthWithTabs(s string, startCol int, cfg Config) int {
	if s == "" {
		return 0
	}
	col := startCol
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		if cluster == "\t" {
			next := TabStop(col, cfg.TabSize())
			col = next
			continue
		}
		col += ClusterWidth(cluster, cfg)
	}
	return col - startCol
}

// ByteOffsetAtColumn returns the byte offset within s where display column
// target begins, snapping forward to the nearest grapheme-cluster boundary
// when target falls inside a multi-column cluster. startCol is the column s
// itself begins at (for tab expansion). If target is at or beyond s's total
// width, len(s) is returned.
func ByteOffsetAtColumn(s string, target, startCol int, cfg Config) int {
	if target <= 0 {
		return 0
	}
	col := startCol
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		start, end := gr.Positions()
		if col >= startCol+target {
			return start
		}
		cluster := gr.Str()
		var w int
		if cluster == "\t" {
			next := TabStop(col, cfg.TabSize())
			w = next - col
		} else {
			w = ClusterWidth(cluster, cfg)
		}
		if col+w > startCol+target {
			// target lands inside this cluster; snap forward past it.
			return end
		}
		col += w
	}
	return len(s)
}

// TabStop returns the next tab stop column strictly after col, for the given
// tab size (a col already on a stop advances to the following one). Matches the C-style "advance to next multiple" tab semantics.
func TabStop(col, tabSize int) int {
	if tabSize <= 0 {
		tabSize = 8
	}
	return ((col / tabSize) + 1) * tabSize
}

// GraphemeClusters splits s into user-perceived characters.
func GraphemeClusters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// ClusterWidth returns the display width of a single grapheme cluster.
// Multi-rune clusters (emoji + modifier, ZWJ sequences, base + combining
// mark) use the width of the base (first) rune, since modifiers, ZWJ joins,
// and combining marks never add columns of their own, except variation
// selectors (U+FE0E/FE0F), which flip between text and emoji presentation
// and so must be measured as a whole via uniwidth.
func ClusterWidth(cluster string, cfg Config) int {
	if cluster == "" {
		return 0
	}
	runes := []rune(cluster)
	if len(runes) == 1 {
		return runeWidth(runes[0], cfg)
	}

	first := runes[0]
	if IsZeroWidth(first) {
		return 0
	}
	if len(runes) >= 2 {
		switch runes[1] {
		case 0xFE0E, 0xFE0F:
			return stringWidth(cluster, cfg)
		}
	}
	return runeWidth(first, cfg)
}

// IsZeroWidth reports whether r renders with zero columns: combining marks,
// format characters, and the zero-width space / BOM.
func IsZeroWidth(r rune) bool {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc, unicode.Cf) {
		return true
	}
	return r == '\u200b' || r == '\ufeff'
}

// containsComplexUnicode reports whether s contains any codepoint that
// requires full grapheme-cluster analysis: ZWJ joins, variation selectors,
// emoji skin-tone modifiers, or combining marks. Plain ASCII, CJK, and
// simple (unmodified) emoji never trigger this and take the uniwidth fast
// path.
func containsComplexUnicode(s string) bool {
	for _, r := range s {
		switch {
		case r == 0x200D: // zero-width joiner
			return true
		case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
			return true
		case r >= 0x1F3FB && r <= 0x1F3FF: // emoji skin-tone modifiers
			return true
		case unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc):
			return true
		}
	}
	return false
}
