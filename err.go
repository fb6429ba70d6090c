package binparser

import "fmt"

// A UsageError is returned when you use a Parser in an inappropriate way.
type UsageError struct {
	API string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("binparser: usage error in %v: %v", e.API, e.Msg)
}

// An OutOfBufferError is returned when a read, alignment, or seek asks
// for more than the buffer has left. The cursor is unchanged.
type OutOfBufferError struct {
	API string
	Pos Position
}

func (e *OutOfBufferError) Error() string {
	return fmt.Sprintf("binparser: out of buffer in %v (byte %v, bit %v)", e.API, e.Pos.Byte, e.Pos.Bit)
}

// A NotByteAlignedError is returned by Bytes when the cursor is not on
// a byte boundary.
type NotByteAlignedError struct {
	Pos Position
}

func (e *NotByteAlignedError) Error() string {
	return fmt.Sprintf("binparser: cursor not byte-aligned (byte %v, bit %v)", e.Pos.Byte, e.Pos.Bit)
}
