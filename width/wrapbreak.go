package width

import (
	"github.com/clipperhouse/uax29/v2/words"
)

// WordBreak is a candidate wrap position: the byte offset into the source
// string where a word segment ends (and the next one, if any, begins; the
// last break is len(s)), and whether the segment crossed
// consists solely of whitespace (a break that should be "eaten" rather than
// carried to the start of the next virtual line, per common word-wrap
// convention).
type WordBreak struct {
	ByteOffset int
	Whitespace bool
}

// WordBreaks scans s using a UAX #29-derived word segmenter (the same
// algorithm family UAX #14 line-breaking leans on for word-like text runs)
// and returns every segment boundary after the first. These are the
// candidate wrap points the view's "word" wrap mode chooses among: it
// prefers the last break that fits a line, falling back to a character wrap
// when none does.
func WordBreaks(s string) []WordBreak {
	if s == "" {
		return nil
	}
	tokens := words.FromString(s)
	var breaks []WordBreak
	offset := 0
	for tokens.Next() {
		value := tokens.Value()
		offset += len(value)
		breaks = append(breaks, WordBreak{
			ByteOffset: offset,
			Whitespace: isWhitespaceSegment(value),
		})
	}
	return breaks
}

func isWhitespaceSegment(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t':
			continue
		default:
			return false
		}
	}
	return len(s) > 0
}
