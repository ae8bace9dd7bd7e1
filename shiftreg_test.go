package bitops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bitops "github.com/ThenTech/Bit-Operations"
	"github.com/ThenTech/Bit-Operations/testutil"
)

func TestAddLeft(t *testing.T) {
	assert.Equal(t, uint8(0b10000000), bitops.AddLeft(uint8(0b00000001), true))
	assert.Equal(t, uint8(0b00000001), bitops.AddLeft(uint8(0b00000010), false))
	assert.Equal(t, uint8(0b11000000), bitops.AddLeft(uint8(0b10000000), true))
}

func TestAddRight(t *testing.T) {
	assert.Equal(t, uint8(0b00000011), bitops.AddRight(uint8(0b00000001), true))
	assert.Equal(t, uint8(0b00000010), bitops.AddRight(uint8(0b00000001), false))

	// The MSB is pushed out.
	assert.Equal(t, uint8(0b00000001), bitops.AddRight(uint8(0b10000000), true))
}

func TestAddBitsLeft(t *testing.T) {
	assert.Equal(t, uint8(0b10100001), bitops.AddBitsLeft(uint8(0b00001111), uint8(0b101), 3))
	assert.Equal(t, uint8(0b00001111), bitops.AddBitsLeft(uint8(0b00001111), uint8(0b101), 0))

	// Only the low n bits of the injected value are used.
	assert.Equal(t, uint8(0b10000000), bitops.AddBitsLeft(uint8(0), uint8(0xFD), 1))

	// n saturates to the width: the injected value replaces the register.
	assert.Equal(t, uint8(0xAA), bitops.AddBitsLeft(uint8(0xFF), uint8(0xAA), 100))
}

func TestAddBitsRight(t *testing.T) {
	assert.Equal(t, uint8(0b10000101), bitops.AddBitsRight(uint8(0b11110000), uint8(0b101), 3))
	assert.Equal(t, uint8(0b11110000), bitops.AddBitsRight(uint8(0b11110000), uint8(0b101), 0))

	// Only the low n bits of the injected value are used.
	assert.Equal(t, uint8(0b00000001), bitops.AddBitsRight(uint8(0), uint8(0xFD), 1))

	// n saturates to the width: the injected value replaces the register.
	assert.Equal(t, uint8(0xAA), bitops.AddBitsRight(uint8(0xFF), uint8(0xAA), 100))
}

func TestGetAndRemoveLeft(t *testing.T) {
	bit, rest := bitops.GetAndRemoveLeft(uint8(0b10000001))
	assert.True(t, bit)
	assert.Equal(t, uint8(0b00000010), rest)

	bit, rest = bitops.GetAndRemoveLeft(rest)
	assert.False(t, bit)
	assert.Equal(t, uint8(0b00000100), rest)
}

func TestGetAndRemoveRight(t *testing.T) {
	bit, rest := bitops.GetAndRemoveRight(uint8(0b10000001))
	assert.True(t, bit)
	assert.Equal(t, uint8(0b01000000), rest)

	bit, rest = bitops.GetAndRemoveRight(rest)
	assert.False(t, bit)
	assert.Equal(t, uint8(0b00100000), rest)
}

func TestConsumeAllBits(t *testing.T) {
	// Consuming N bits from the right and re-appending them on the left
	// restores the register.
	rng := testutil.NewRNG(4711)

	for i := 0; i < 100; i++ {
		b := rng.Uint64()
		rest := b
		var rebuilt uint64
		var bit bitops.Bit
		for n := 0; n < 64; n++ {
			bit, rest = bitops.GetAndRemoveRight(rest)
			rebuilt = bitops.AddLeft(rebuilt, bit)
		}
		assert.Equal(t, uint64(0), rest)
		assert.Equal(t, b, rebuilt)
	}
}
