package bitops

// Reverse returns the bit-mirror of b: bit 1 swaps with bit N, bit 2
// with bit N-1, and so on. Built by consuming all N bits from the right
// and appending each to the right of an accumulator.
func Reverse[T Word](b T) T {
	var rev T
	var bit Bit
	for i := Width[T](); i > 0; i-- {
		bit, b = GetAndRemoveRight(b)
		rev = AddRight(rev, bit)
	}
	return rev
}

// RotateLeft rotates b left by n positions. The rotation amount is
// reduced modulo N, so n = 0 and n = N are both the identity.
func RotateLeft[T Word](b T, n int) T {
	w := Width[T]()
	n %= w
	if n < 0 {
		n += w
	}
	if n == 0 {
		return b
	}
	return AddBitsRight(b, GetSection(b, w-n+1, w), n)
}

// RotateRight rotates b right by n positions. The rotation amount is
// reduced modulo N, so n = 0 and n = N are both the identity.
func RotateRight[T Word](b T, n int) T {
	w := Width[T]()
	n %= w
	if n < 0 {
		n += w
	}
	if n == 0 {
		return b
	}
	return AddBitsLeft(b, GetSection(b, 1, n), n)
}

// GetFirst1 returns the 1-based position of the lowest set bit of b,
// or 0 if b is zero.
func GetFirst1[T Word](b T) int {
	if b == 0 {
		return 0
	}
	var bit Bit
	for i := 1; ; i++ {
		bit, b = GetAndRemoveRight(b)
		if bit {
			return i
		}
	}
}

// Count1 returns the number of set bits of b.
func Count1[T Word](b T) int {
	var n int
	var bit Bit
	for b != 0 {
		bit, b = GetAndRemoveRight(b)
		if bit {
			n++
		}
	}
	return n
}

// GetEvenParityBit returns the bit that must be appended to b so that
// the total number of set bits becomes even: true iff Count1(b) is odd.
func GetEvenParityBit[T Word](b T) Bit {
	return Count1(b)%2 == 1
}

// GetSize returns the 1-based position of the highest set bit of b,
// i.e. the minimum width needed to represent b, or 0 if b is zero.
func GetSize[T Word](b T) int {
	if b == 0 {
		return 0
	}
	var bit Bit
	for i := Width[T](); ; i-- {
		bit, b = GetAndRemoveLeft(b)
		if bit {
			return i
		}
	}
}
