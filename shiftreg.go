package bitops

// AddLeft shifts b one position to the right and injects add as the new
// MSB, modeling a shift register with serial input on the left.
func AddLeft[T Word](b T, add Bit) T {
	var msb T
	if add {
		msb = Mask1[T](Width[T]())
	}
	return Or(ShiftRight(b, 1), msb)
}

// AddRight shifts b one position to the left and injects add as the new
// LSB.
func AddRight[T Word](b T, add Bit) T {
	var lsb T
	if add {
		lsb = 1
	}
	return Or(ShiftLeft(b, 1), lsb)
}

// AddBitsLeft shifts b n positions to the right and injects the n
// least-significant bits of left at the vacated MSB end. n is saturated
// to [0, N].
func AddBitsLeft[T Word](b T, left T, n int) T {
	n = clampCount[T](n)
	return Or(ShiftRight(b, n), ShiftLeft(FilterRight(left, n), Width[T]()-n))
}

// AddBitsRight shifts b n positions to the left and injects the n
// least-significant bits of right at the vacated LSB end. n is saturated
// to [0, N].
func AddBitsRight[T Word](b T, right T, n int) T {
	n = clampCount[T](n)
	return Or(ShiftLeft(b, n), FilterRight(right, n))
}

// GetAndRemoveLeft returns the MSB of b together with b shifted one
// position to the left, discarding the bit just read.
func GetAndRemoveLeft[T Word](b T) (Bit, T) {
	return Get(b, Width[T]()), ShiftLeft(b, 1)
}

// GetAndRemoveRight returns the LSB of b together with b shifted one
// position to the right, discarding the bit just read.
func GetAndRemoveRight[T Word](b T) (Bit, T) {
	return Get(b, 1), ShiftRight(b, 1)
}
