package bitops

// FromStringMSB parses s into a register, treating the first recognized
// character as the most-significant bit. Characters other than '0' and
// '1' are skipped. Each recognized bit is appended on the right, so once
// more than N bits have been seen the earliest ones are pushed out: the
// last N recognized characters determine the result.
func FromStringMSB[T Word](s string) T {
	var b T
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			b = AddRight(b, false)
		case '1':
			b = AddRight(b, true)
		}
	}
	return b
}

// FromStringLSB parses s into a register, treating the first recognized
// character as the least-significant bit. Characters other than '0' and
// '1' are skipped.
func FromStringLSB[T Word](s string) T {
	return Reverse(FromStringMSB[T](s))
}

// ToStringBinMSB renders b as a string of exactly N '0'/'1' characters,
// most-significant bit first.
func ToStringBinMSB[T Word](b T) string {
	buf := make([]byte, Width[T]())
	var bit Bit
	for i := len(buf) - 1; i >= 0; i-- {
		bit, b = GetAndRemoveRight(b)
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// ToStringBinLSB renders b as a string of exactly N '0'/'1' characters,
// least-significant bit first.
func ToStringBinLSB[T Word](b T) string {
	return ToStringBinMSB(Reverse(b))
}
