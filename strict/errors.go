package strict

import "fmt"

// ErrIndexOutOfRange indicates a 1-based bit position outside [1, N].
type ErrIndexOutOfRange struct {
	Index int
	Width int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index %d out of range [1, %d]", e.Index, e.Width)
}

// ErrCountOutOfRange indicates a bit count outside [0, N].
type ErrCountOutOfRange struct {
	Count int
	Width int
}

func (e *ErrCountOutOfRange) Error() string {
	return fmt.Sprintf("bit count %d out of range [0, %d]", e.Count, e.Width)
}

// ErrSectionBounds indicates an inverted section: from > to.
type ErrSectionBounds struct {
	From int
	To   int
}

func (e *ErrSectionBounds) Error() string {
	return fmt.Sprintf("section bounds inverted: from %d > to %d", e.From, e.To)
}

// ErrInvalidChar indicates a character other than '0' or '1' in a
// binary string.
type ErrInvalidChar struct {
	Char   byte
	Offset int
}

func (e *ErrInvalidChar) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d: want '0' or '1'", e.Char, e.Offset)
}
