package textbuffer

import (
	"github.com/opentui/textengine/memreg"
	"github.com/opentui/textengine/rope"
	"github.com/opentui/textengine/width"
)

// leafSplitter implements rope.LeafSplitter by consulting the buffer's
// memory registry for a segment's underlying bytes and locating the exact
// byte offset for a column weight, respecting grapheme-cluster boundaries
// and the configured tab width.
type leafSplitter struct {
	mem *memreg.Registry
	cfg width.Config
}

func (s *leafSplitter) SplitText(seg rope.Segment, weight int) (left, right rope.Segment) {
	buf, err := s.mem.Get(seg.MemID)
	if err != nil {
		return seg, rope.Segment{}
	}
	text := buf[seg.ByteStart:seg.ByteEnd]

	if seg.ASCIIOnly() {
		byteOff := weight
		if byteOff > len(text) {
			byteOff = len(text)
		}
		left = rope.NewText(seg.MemID, seg.ByteStart, seg.ByteStart+byteOff, byteOff, seg.Flags)
		right = rope.NewText(seg.MemID, seg.ByteStart+byteOff, seg.ByteEnd, seg.Width()-byteOff, seg.Flags)
		return left, right
	}

	byteOff := width.ByteOffsetAtColumn(string(text), weight, 0, s.cfg)
	leftText := text[:byteOff]
	rightText := text[byteOff:]
	leftW, leftAscii := chunkWidth(leftText, 0, s.cfg)
	rightW, rightAscii := chunkWidth(rightText, leftW, s.cfg)

	left = rope.NewText(seg.MemID, seg.ByteStart, seg.ByteStart+byteOff, leftW, textFlags(leftAscii))
	right = rope.NewText(seg.MemID, seg.ByteStart+byteOff, seg.ByteEnd, rightW, textFlags(rightAscii))
	return left, right
}
