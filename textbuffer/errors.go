package textbuffer

import "errors"

var (
	// ErrInvalidIndex is returned for an out-of-range line or column index.
	ErrInvalidIndex = errors.New("textbuffer: invalid index")
	// ErrInvalidMemID is returned when a styled chunk or SetTextFromMemID
	// names a mem id the buffer's registry does not know about.
	ErrInvalidMemID = errors.New("textbuffer: invalid mem id")
	// ErrIoError wraps a failure loading a file's bytes. The underlying os
	// error appears only in the message text (it is formatted, not
	// wrapped), and it is not mapped onto any other sentinel of this package.
	ErrIoError = errors.New("textbuffer: io error")
)
