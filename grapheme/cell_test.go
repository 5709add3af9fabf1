package grapheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeScalarRoundTrip(t *testing.T) {
	c := EncodeScalar('A')
	kind, r, id, left, right := c.Decode()
	assert.Equal(t, KindScalar, kind)
	assert.Equal(t, 'A', r)
	assert.Equal(t, ID(0), id)
	assert.Equal(t, uint8(0), left)
	assert.Equal(t, uint8(0), right)
	assert.Equal(t, 1, c.Width())
}

func TestEncodeScalarHighCodepoint(t *testing.T) {
	// U+1F600 (grinning face) fits comfortably under the 26-bit id mask.
	c := EncodeScalar(0x1F600)
	_, r, _, _, _ := c.Decode()
	assert.Equal(t, rune(0x1F600), r)
}

func TestEncodeGraphemeStartRoundTrip(t *testing.T) {
	id := newID(2, 5, 100)
	c := EncodeGraphemeStart(id, 1)
	kind, r, gotID, left, right := c.Decode()
	assert.Equal(t, KindGraphemeStart, kind)
	assert.Equal(t, rune(0), r)
	assert.Equal(t, id, gotID)
	assert.Equal(t, uint8(0), left)
	assert.Equal(t, uint8(1), right)
	assert.Equal(t, 2, c.Width())
}

func TestEncodeContinuationRoundTrip(t *testing.T) {
	id := newID(3, 9, 42)
	c := EncodeContinuation(id, 1, 2)
	kind, _, gotID, left, right := c.Decode()
	assert.Equal(t, KindContinuation, kind)
	assert.Equal(t, id, gotID)
	assert.Equal(t, uint8(1), left)
	assert.Equal(t, uint8(2), right)
	assert.Equal(t, 4, c.Width())
}

func TestExtentsClampToTwoBits(t *testing.T) {
	id := newID(0, 0, 0)
	c := EncodeContinuation(id, 7, 7)
	_, _, _, left, right := c.Decode()
	assert.Equal(t, uint8(3), left)
	assert.Equal(t, uint8(3), right)
}
