package grapheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDRoundTrip(t *testing.T) {
	id := newID(5, 97, 4321)
	assert.Equal(t, uint8(5), id.Class())
	assert.Equal(t, uint8(97), id.Generation())
	assert.Equal(t, uint16(4321), id.Slot())
}

func TestIDFieldsDoNotBleedIntoOneAnother(t *testing.T) {
	id := newID(classMask, generationMask, slotMask)
	assert.Equal(t, uint8(classMask), id.Class())
	assert.Equal(t, uint8(generationMask), id.Generation())
	assert.Equal(t, uint16(slotMask), id.Slot())
}

func TestIDZeroValue(t *testing.T) {
	var id ID
	assert.Equal(t, uint8(0), id.Class())
	assert.Equal(t, uint8(0), id.Generation())
	assert.Equal(t, uint16(0), id.Slot())
}
