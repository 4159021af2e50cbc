package patricia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBitZeroIndexIsFalse(t *testing.T) {
	key := []byte{0xAA}
	assert.False(t, getBit(key, 8, 0))
}

func TestGetBitWithinLength(t *testing.T) {
	// 0xAA == 1010 1010
	key := []byte{0xAA}
	want := []bool{true, false, true, false, true, false, true, false}
	for i, w := range want {
		assert.Equalf(t, w, getBit(key, 8, uint16(i+1)), "bit %d", i+1)
	}
}

func TestGetBitExtensionIsComplementOfLastBit(t *testing.T) {
	key := []byte{0xAA} // last bit (8) is 0
	assert.True(t, getBit(key, 8, 9))
	assert.True(t, getBit(key, 8, 100))

	key2 := []byte{0xAB} // last bit (8) is 1
	assert.False(t, getBit(key2, 8, 9))
}

func TestGetBitZeroLengthKeyExtendsAsComplementOfFalse(t *testing.T) {
	assert.True(t, getBit(nil, 0, 1))
	assert.True(t, getBit(nil, 0, 50))
}

func TestBitDiffEqualKeysIsZero(t *testing.T) {
	key := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	require.Equal(t, uint16(0), bitDiff(key, 32, key, 32))
}

func TestBitDiffAlternatingPatternExtension(t *testing.T) {
	// 0xAAAAAAAA == 1010 1010 1010 1010 1010 1010 1010 1010
	p := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	for i := uint16(1); i < 32; i++ {
		got := bitDiff(p, i, p, i+1)
		assert.Equalf(t, i+2, got, "i=%d", i)
	}
}

func TestBitDiffShortZeroPrefixVsExtendedAlternating(t *testing.T) {
	p := []byte{0xAA, 0x00, 0x00, 0x00}
	for l2 := uint16(9); l2 < 32; l2++ {
		got := bitDiff(p, 8, p, l2)
		assert.Equalf(t, uint16(9), got, "l2=%d", l2)
	}
}

func TestBitDiffShortOnesPrefixVsExtendedAlternating(t *testing.T) {
	p := []byte{0xAA, 0xFF, 0xFF, 0xFF}
	for l2 := uint16(9); l2 < 32; l2++ {
		got := bitDiff(p, 8, p, l2)
		assert.Equalf(t, l2+1, got, "l2=%d", l2)
	}
}

func TestEqualKeyLengthMismatch(t *testing.T) {
	assert.False(t, equalKey([]byte{0xAA}, 8, []byte{0xAA}, 7))
}

func TestEqualKeyPartialByte(t *testing.T) {
	assert.True(t, equalKey([]byte{0xA8}, 5, []byte{0xAF}, 5)) // top 5 bits (10101) match
	assert.False(t, equalKey([]byte{0xA8}, 6, []byte{0xAF}, 6))
}
