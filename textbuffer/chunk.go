package textbuffer

import (
	"github.com/opentui/textengine/rope"
	"github.com/opentui/textengine/width"
)

// isASCIIOnly reports whether b contains only bytes < 0x80, the fast path
// where width equals byte count and no grapheme segmentation is needed.
func isASCIIOnly(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// chunkWidth computes a Text segment's display width once, at creation
// time, so later reads never re-scan its bytes. startCol is the column the
// chunk begins at, needed to expand any tabs it contains to the correct
// stop.
func chunkWidth(b []byte, startCol int, cfg width.Config) (widthCols int, ascii bool) {
	if len(b) == 0 {
		return 0, true
	}
	if isASCIIOnly(b) {
		s := string(b)
		if !containsTab(s) {
			return len(b), true
		}
		return width.WidthWithTabs(s, startCol, cfg), false
	}
	return width.WidthWithTabs(string(b), startCol, cfg), false
}

func containsTab(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			return true
		}
	}
	return false
}

func textFlags(ascii bool) rope.TextFlags {
	if ascii {
		return rope.FlagASCIIOnly
	}
	return 0
}
