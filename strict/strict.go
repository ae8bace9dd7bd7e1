// Package strict exposes the fail-fast variant of the bitops contract:
// the same operations as the root package, but out-of-range positions,
// counts and malformed characters return a typed error instead of being
// clamped or skipped.
//
// For valid inputs every function returns exactly what its clamping
// counterpart returns.
package strict

import (
	bitops "github.com/ThenTech/Bit-Operations"
)

func checkIndex[T bitops.Word](n int) error {
	if w := bitops.Width[T](); n < 1 || n > w {
		return &ErrIndexOutOfRange{Index: n, Width: w}
	}
	return nil
}

func checkCount[T bitops.Word](n int) error {
	if w := bitops.Width[T](); n < 0 || n > w {
		return &ErrCountOutOfRange{Count: n, Width: w}
	}
	return nil
}

func checkSection[T bitops.Word](from, to int) error {
	if err := checkIndex[T](from); err != nil {
		return err
	}
	if err := checkIndex[T](to); err != nil {
		return err
	}
	if from > to {
		return &ErrSectionBounds{From: from, To: to}
	}
	return nil
}

// Mask1 returns a register with exactly one bit set at position n.
func Mask1[T bitops.Word](n int) (T, error) {
	if err := checkIndex[T](n); err != nil {
		return 0, err
	}
	return bitops.Mask1[T](n), nil
}

// TurnOn returns b with bit n set.
func TurnOn[T bitops.Word](b T, n int) (T, error) {
	if err := checkIndex[T](n); err != nil {
		return 0, err
	}
	return bitops.TurnOn(b, n), nil
}

// TurnOff returns b with bit n cleared.
func TurnOff[T bitops.Word](b T, n int) (T, error) {
	if err := checkIndex[T](n); err != nil {
		return 0, err
	}
	return bitops.TurnOff(b, n), nil
}

// Toggle returns b with bit n negated.
func Toggle[T bitops.Word](b T, n int) (T, error) {
	if err := checkIndex[T](n); err != nil {
		return 0, err
	}
	return bitops.Toggle(b, n), nil
}

// Get reports whether bit n of b is set.
func Get[T bitops.Word](b T, n int) (bitops.Bit, error) {
	if err := checkIndex[T](n); err != nil {
		return false, err
	}
	return bitops.Get(b, n), nil
}

// FilterLeft keeps only the n most-significant bits of b.
func FilterLeft[T bitops.Word](b T, n int) (T, error) {
	if err := checkCount[T](n); err != nil {
		return 0, err
	}
	return bitops.FilterLeft(b, n), nil
}

// FilterRight keeps only the n least-significant bits of b.
func FilterRight[T bitops.Word](b T, n int) (T, error) {
	if err := checkCount[T](n); err != nil {
		return 0, err
	}
	return bitops.FilterRight(b, n), nil
}

// FilterSectionIncl keeps only the bits in the inclusive range [from, to].
func FilterSectionIncl[T bitops.Word](b T, from, to int) (T, error) {
	if err := checkSection[T](from, to); err != nil {
		return 0, err
	}
	return bitops.FilterSectionIncl(b, from, to), nil
}

// FilterSectionExcl keeps only the bits outside the inclusive range
// [from, to].
func FilterSectionExcl[T bitops.Word](b T, from, to int) (T, error) {
	if err := checkSection[T](from, to); err != nil {
		return 0, err
	}
	return bitops.FilterSectionExcl(b, from, to), nil
}

// GetSection extracts the bits in the inclusive range [from, to],
// shifted down to the LSB end.
func GetSection[T bitops.Word](b T, from, to int) (T, error) {
	if err := checkSection[T](from, to); err != nil {
		return 0, err
	}
	return bitops.GetSection(b, from, to), nil
}

// AddBitsLeft shifts b n positions to the right and injects the n
// least-significant bits of left at the MSB end.
func AddBitsLeft[T bitops.Word](b T, left T, n int) (T, error) {
	if err := checkCount[T](n); err != nil {
		return 0, err
	}
	return bitops.AddBitsLeft(b, left, n), nil
}

// AddBitsRight shifts b n positions to the left and injects the n
// least-significant bits of right at the LSB end.
func AddBitsRight[T bitops.Word](b T, right T, n int) (T, error) {
	if err := checkCount[T](n); err != nil {
		return 0, err
	}
	return bitops.AddBitsRight(b, right, n), nil
}

// RotateLeft rotates b left by n positions, n in [0, N].
func RotateLeft[T bitops.Word](b T, n int) (T, error) {
	if err := checkCount[T](n); err != nil {
		return 0, err
	}
	return bitops.RotateLeft(b, n), nil
}

// RotateRight rotates b right by n positions, n in [0, N].
func RotateRight[T bitops.Word](b T, n int) (T, error) {
	if err := checkCount[T](n); err != nil {
		return 0, err
	}
	return bitops.RotateRight(b, n), nil
}

// FromStringMSB parses s with the first character as the MSB. Unlike the
// clamping API it rejects any character other than '0' and '1'.
func FromStringMSB[T bitops.Word](s string) (T, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return 0, &ErrInvalidChar{Char: s[i], Offset: i}
		}
	}
	return bitops.FromStringMSB[T](s), nil
}

// FromStringLSB parses s with the first character as the LSB, rejecting
// any character other than '0' and '1'.
func FromStringLSB[T bitops.Word](s string) (T, error) {
	b, err := FromStringMSB[T](s)
	if err != nil {
		return 0, err
	}
	return bitops.Reverse(b), nil
}
