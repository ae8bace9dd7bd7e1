package bitops

// Mask1 returns a register with exactly one bit set at position n.
// n is clamped to [1, N].
func Mask1[T Word](n int) T {
	return ShiftLeft(T(1), clampIndex[T](n)-1)
}

// TurnOn returns b with bit n set.
func TurnOn[T Word](b T, n int) T {
	return Or(b, Mask1[T](n))
}

// TurnOff returns b with bit n cleared.
func TurnOff[T Word](b T, n int) T {
	return And(b, ToggleAll(Mask1[T](n)))
}

// Toggle returns b with bit n negated.
func Toggle[T Word](b T, n int) T {
	return Xor(b, Mask1[T](n))
}

// Get reports whether bit n of b is set.
func Get[T Word](b T, n int) Bit {
	return And(b, Mask1[T](n)) != 0
}

// FilterLeft keeps only the n most-significant bits of b, zeroing the
// rest. n is saturated to [0, N].
func FilterLeft[T Word](b T, n int) T {
	k := Width[T]() - clampCount[T](n)
	return ShiftLeft(ShiftRight(b, k), k)
}

// FilterRight keeps only the n least-significant bits of b, zeroing the
// rest. n is saturated to [0, N].
func FilterRight[T Word](b T, n int) T {
	k := Width[T]() - clampCount[T](n)
	return ShiftRight(ShiftLeft(b, k), k)
}

// FilterSectionIncl keeps only the bits in the inclusive range
// [from, to], zeroing the rest. Both bounds are clamped to [1, N];
// from > to yields 0.
func FilterSectionIncl[T Word](b T, from, to int) T {
	from = clampIndex[T](from)
	return FilterLeft(FilterRight(b, clampIndex[T](to)), Width[T]()-from+1)
}

// FilterSectionExcl keeps only the bits outside the inclusive range
// [from, to], zeroing the section itself.
func FilterSectionExcl[T Word](b T, from, to int) T {
	return Xor(b, FilterSectionIncl(b, from, to))
}

// GetSection extracts the bits in the inclusive range [from, to] and
// shifts them down to the LSB end, ready for use as a small integer.
func GetSection[T Word](b T, from, to int) T {
	from = clampIndex[T](from)
	return ShiftRight(FilterSectionIncl(b, from, to), from-1)
}
