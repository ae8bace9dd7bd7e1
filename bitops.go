package bitops

import "math/bits"

// Word constrains the register to a fixed-width unsigned integer type.
// The register width N is derived from the instantiated type: 8 for
// ~uint8, 16 for ~uint16, 32 for ~uint32 and 64 for ~uint64.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bit is a single logical bit: false = 0, true = 1.
type Bit = bool

// Width returns the register width N in bits for the instantiated type.
func Width[T Word]() int {
	return bits.Len64(uint64(^T(0)))
}

// ShiftLeft shifts b left by n positions, filling with zeros.
// Shifting by n >= N yields 0; negative n is treated as 0.
func ShiftLeft[T Word](b T, n int) T {
	if n < 0 {
		n = 0
	}
	return b << uint(n)
}

// ShiftRight shifts b right by n positions, filling with zeros.
// Shifting by n >= N yields 0; negative n is treated as 0.
func ShiftRight[T Word](b T, n int) T {
	if n < 0 {
		n = 0
	}
	return b >> uint(n)
}

// Or returns the bitwise OR of b1 and b2.
func Or[T Word](b1, b2 T) T {
	return b1 | b2
}

// Xor returns the bitwise XOR of b1 and b2.
func Xor[T Word](b1, b2 T) T {
	return b1 ^ b2
}

// And returns the bitwise AND of b1 and b2.
func And[T Word](b1, b2 T) T {
	return b1 & b2
}

// ToggleAll returns b with every bit negated.
func ToggleAll[T Word](b T) T {
	return ^b
}

// clampIndex maps a 1-based bit position onto [1, N].
func clampIndex[T Word](n int) int {
	if n < 1 {
		return 1
	}
	if w := Width[T](); n > w {
		return w
	}
	return n
}

// clampCount saturates a bit count onto [0, N].
func clampCount[T Word](n int) int {
	if n < 0 {
		return 0
	}
	if w := Width[T](); n > w {
		return w
	}
	return n
}
