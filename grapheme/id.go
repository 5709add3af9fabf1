package grapheme

// ID is the 26-bit public handle to an interned grapheme cluster, packed as
// [class:3][generation:7][slot:16]. It is safe to copy and to embed in a
// grid cell's char field (see cell.go); validity is checked against the
// pool's slot generation on every access, never assumed.
type ID uint32

const (
	classBits      = 3
	generationBits = 7
	slotBits       = 16

	slotMask       = (1 << slotBits) - 1
	generationMask = (1 << generationBits) - 1
	classMask      = (1 << classBits) - 1

	// GenerationPeriod is the number of times a slot can be reused before its
	// generation counter wraps back to zero.
	GenerationPeriod = 1 << generationBits
)

func newID(class uint8, generation uint8, slot uint16) ID {
	return ID(uint32(class&classMask)<<(generationBits+slotBits) |
		uint32(generation&generationMask)<<slotBits |
		uint32(slot))
}

// Class returns the size-class index packed into the id.
func (id ID) Class() uint8 {
	return uint8((uint32(id) >> (generationBits + slotBits)) & classMask)
}

// Generation returns the generation packed into the id.
func (id ID) Generation() uint8 {
	return uint8((uint32(id) >> slotBits) & generationMask)
}

// Slot returns the slot index packed into the id.
func (id ID) Slot() uint16 {
	return uint16(uint32(id) & slotMask)
}
