package bitops

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// FprintBin writes the binary representation of b to w, MSB first,
// without a trailing newline.
func FprintBin[T Word](w io.Writer, b T) error {
	return FprintBinNibble(w, b, false)
}

// FprintBinNibble writes the binary representation of b to w, MSB first.
// When grouped is true a space follows every nibble, including the last.
func FprintBinNibble[T Word](w io.Writer, b T, grouped bool) error {
	var sb strings.Builder
	var bit Bit
	for i := Width[T](); i > 0; i-- {
		bit, b = GetAndRemoveLeft(b)
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if grouped && (i-1)%4 == 0 {
			sb.WriteByte(' ')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FprintHex writes b to w as zero-padded uppercase hexadecimal with a
// "0x" prefix. The field is N/4 digits wide (18 characters total at
// N = 64).
func FprintHex[T Word](w io.Writer, b T) error {
	_, err := fmt.Fprintf(w, "0x%0*X", Width[T]()/4, uint64(b))
	return err
}

// PrintBin writes the binary representation of b to standard output.
func PrintBin[T Word](b T) {
	_ = FprintBin(os.Stdout, b)
}

// PrintBinNibble writes the binary representation of b to standard
// output, optionally grouped in nibbles.
func PrintBinNibble[T Word](b T, grouped bool) {
	_ = FprintBinNibble(os.Stdout, b, grouped)
}

// PrintHex writes the hexadecimal representation of b to standard
// output.
func PrintHex[T Word](b T) {
	_ = FprintHex(os.Stdout, b)
}
