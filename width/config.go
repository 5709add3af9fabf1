package width

import "github.com/unilibs/uniwidth"

// Method selects which width algorithm a TextBuffer or View uses to
// measure ambiguous-width codepoints.
type Method int

const (
	// MethodUnicode uses Unicode East-Asian-Width with a neutral (narrow)
	// treatment of the Ambiguous category. This is the default.
	MethodUnicode Method = iota
	// MethodWCWidth mirrors the POSIX wcwidth() convention: Ambiguous-width
	// codepoints are treated as wide, matching many East Asian locale
	// terminal configurations.
	MethodWCWidth
)

// Config is a per-buffer width configuration knob. Terminal emulators do
// not agree on how ambiguous-width codepoints render; callers select
// Method and Config carries it through to every width computation.
type Config struct {
	method  Method
	tabSize int
}

// DefaultConfig returns the neutral-locale configuration: Ambiguous-width
// codepoints are narrow, tabs advance to the next multiple of 8 columns.
func DefaultConfig() Config {
	return Config{method: MethodUnicode, tabSize: 8}
}

// NewConfig creates a Config with an explicit method and tab size. tabSize
// is clamped to an even number >= 2, matching TextBuffer.SetTabWidth.
func NewConfig(method Method, tabSize int) Config {
	return Config{method: method, tabSize: clampTabWidth(tabSize)}
}

// WithEastAsianWide returns a copy of c configured to treat East-Asian
// Ambiguous-width codepoints as wide (2 columns), matching CJK locale
// terminal emulators.
func (c Config) WithEastAsianWide() Config {
	c.method = MethodWCWidth
	return c
}

// WithTabSize returns a copy of c with the tab size clamped to an even
// number >= 2.
func (c Config) WithTabSize(n int) Config {
	c.tabSize = clampTabWidth(n)
	return c
}

// Method returns the configured width method.
func (c Config) Method() Method {
	return c.method
}

// TabSize returns the configured tab stop width.
func (c Config) TabSize() int {
	if c.tabSize == 0 {
		return 8
	}
	return c.tabSize
}

// EastAsianAmbiguous returns the uniwidth treatment of Ambiguous-width
// codepoints under this configuration: EAWide (2 columns) for the wcwidth
// method, EANarrow otherwise.
func (c Config) EastAsianAmbiguous() uniwidth.EAWidth {
	if c.method == MethodWCWidth {
		return uniwidth.EAWide
	}
	return uniwidth.EANarrow
}

func clampTabWidth(n int) int {
	if n < 2 {
		return 2
	}
	if n%2 != 0 {
		n++
	}
	return n
}
