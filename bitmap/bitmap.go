// Package bitmap converts bit registers to and from set-oriented bitmap
// types, viewing a register as the set of its 1-based set-bit positions.
//
// Two representations are supported: Roaring bitmaps
// (github.com/RoaringBitmap/roaring) and dense bitsets
// (github.com/bits-and-blooms/bitset). Positions outside [1, N] are
// skipped on import, mirroring the skip policy of the string parsers.
package bitmap

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	bitops "github.com/ThenTech/Bit-Operations"
)

// Roaring returns a Roaring bitmap containing the 1-based positions of
// the set bits of b.
func Roaring[T bitops.Word](b T) *roaring.Bitmap {
	rb := roaring.New()
	for n := 1; n <= bitops.Width[T](); n++ {
		if bitops.Get(b, n) {
			rb.Add(uint32(n))
		}
	}
	return rb
}

// FromRoaring builds a register from the 1-based positions contained in
// rb. Positions outside [1, N] are skipped. A nil bitmap yields 0.
func FromRoaring[T bitops.Word](rb *roaring.Bitmap) T {
	var b T
	if rb == nil {
		return b
	}
	w := bitops.Width[T]()
	it := rb.Iterator()
	for it.HasNext() {
		if n := int(it.Next()); n >= 1 && n <= w {
			b = bitops.TurnOn(b, n)
		}
	}
	return b
}

// BitSet returns a dense bitset whose 0-based bit i mirrors position i+1
// of b.
func BitSet[T bitops.Word](b T) *bitset.BitSet {
	w := bitops.Width[T]()
	s := bitset.New(uint(w))
	for n := 1; n <= w; n++ {
		if bitops.Get(b, n) {
			s.Set(uint(n - 1))
		}
	}
	return s
}

// FromBitSet builds a register from a dense bitset, mapping 0-based bit
// i to position i+1. Bits beyond position N are skipped. A nil bitset
// yields 0.
func FromBitSet[T bitops.Word](s *bitset.BitSet) T {
	var b T
	if s == nil {
		return b
	}
	w := bitops.Width[T]()
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		n := int(i) + 1
		if n > w {
			break
		}
		b = bitops.TurnOn(b, n)
	}
	return b
}
