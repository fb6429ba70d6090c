package binparser

// A Position marks the next bit to read: a byte offset into the buffer
// and a bit offset in [0,8) within that byte. Bit 0 is the byte's
// most-significant bit.
type Position struct {
	Byte uint64
	Bit  uint
}

// advance returns the position bytes and bits further on, carrying bit
// overflow into the byte component. It is the only place cursor
// arithmetic happens; callers compute the next position first and
// commit it only after their bounds check passes.
func (p Position) advance(bytes uint64, bits uint) Position {
	return Position{
		Byte: p.Byte + bytes + uint64((p.Bit+bits)>>3),
		Bit:  (p.Bit + bits) & 0x7,
	}
}
