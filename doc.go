// Package bitops provides pure operations over a single fixed-width
// unsigned word, the bit register.
//
// The register is any unsigned integer type up to 64 bits; every operation
// is generic over the [Word] constraint and derives the register width N
// from the instantiated type. Operations cover boolean algebra, masking,
// shifting, rotation, bit counting, parity, binary-string conversion and
// console formatting.
//
// # Conventions
//
// Bit positions are 1-based, counted from the least-significant bit:
// position 1 is the LSB, position N the MSB.
//
// Out-of-range positions are clamped to the nearest boundary, never
// rejected. Characters other than '0' and '1' are skipped during string
// parsing. No function in this package returns an error; the
// [github.com/ThenTech/Bit-Operations/strict] package exposes the same
// operations with fail-fast validation instead.
//
// # Quick Start
//
//	var b uint8
//	b = bitops.TurnOn(b, 1)            // 00000001
//	b = bitops.TurnOn(b, 8)            // 10000001
//	b = bitops.RotateLeft(b, 1)        // 00000011
//	fmt.Println(bitops.Count1(b))      // 2
//	fmt.Println(bitops.ToStringBinMSB(b))
//
// # Consuming Bits
//
// [GetAndRemoveLeft] and [GetAndRemoveRight] model a shift register with
// serial output: they return the MSB/LSB together with the shifted
// remainder. The higher-level consuming operations (reverse, counting,
// sizing, string conversion, printing) are built on top of them; callers
// thread the updated register value explicitly:
//
//	bit, rest := bitops.GetAndRemoveRight(b)
package bitops
