package style

// Attr is a bitset of text decorations.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrikethrough
)

// TextStyle is the immutable payload a style id resolves to: optional
// foreground/background colors plus a decoration bitset.
type TextStyle struct {
	foreground *Color
	background *Color
	attrs      Attr
}

// NewTextStyle returns a style with no color and no decorations set.
func NewTextStyle() TextStyle {
	return TextStyle{}
}

// WithForeground returns a copy with the foreground color set.
func (s TextStyle) WithForeground(c Color) TextStyle {
	s.foreground = &c
	return s
}

// WithBackground returns a copy with the background color set.
func (s TextStyle) WithBackground(c Color) TextStyle {
	s.background = &c
	return s
}

// WithAttr returns a copy with the given attribute bits set in addition to
// whatever is already set.
func (s TextStyle) WithAttr(a Attr) TextStyle {
	s.attrs |= a
	return s
}

// Foreground returns the foreground color, if set.
func (s TextStyle) Foreground() (Color, bool) {
	if s.foreground == nil {
		return Color{}, false
	}
	return *s.foreground, true
}

// Background returns the background color, if set.
func (s TextStyle) Background() (Color, bool) {
	if s.background == nil {
		return Color{}, false
	}
	return *s.background, true
}

// Has reports whether every bit in a is set.
func (s TextStyle) Has(a Attr) bool {
	return s.attrs&a == a
}

// Bold reports whether the bold attribute is set.
func (s TextStyle) Bold() bool { return s.Has(AttrBold) }

// Italic reports whether the italic attribute is set.
func (s TextStyle) Italic() bool { return s.Has(AttrItalic) }

// Underline reports whether the underline attribute is set.
func (s TextStyle) Underline() bool { return s.Has(AttrUnderline) }

// Strikethrough reports whether the strikethrough attribute is set.
func (s TextStyle) Strikethrough() bool { return s.Has(AttrStrikethrough) }
