package binparser

import (
	"fmt"
	"io"
)

// Parser is a bit-level reader over a borrowed byte buffer. The zero
// value reads from an empty buffer; NewParser and Reset set it up for
// a real one.
type Parser struct {
	buf []byte
	pos Position
}

// NewParser creates a Parser reading from buf, cursor at byte 0, bit 0.
// The Parser keeps a reference to buf and never copies or mutates it.
func NewParser(buf []byte) *Parser {
	return &Parser{buf: buf}
}

// Reset points the Parser at a new buffer and rewinds the cursor,
// allowing reuse without reallocation.
func (p *Parser) Reset(buf []byte) {
	p.buf = buf
	p.pos = Position{}
}

// Len returns the total length of the buffer in bytes.
func (p *Parser) Len() uint64 {
	return uint64(len(p.buf))
}

// Pos returns the current cursor position.
func (p *Parser) Pos() Position {
	return p.pos
}

// HasRest reports whether bytes whole bytes plus bits more bits remain
// readable from the current position.
func (p *Parser) HasRest(bytes uint64, bits uint) bool {
	return hasRest(p.pos, bytes, bits, p.Len())
}

// hasRest is the gating predicate behind every fixed-size read: the
// requested span fits iff the position after it is inside the buffer,
// or exactly at its end on a byte boundary.
func hasRest(pos Position, bytes uint64, bits uint, bufLen uint64) bool {
	next := pos.advance(bytes, bits)
	if next.Byte < bufLen {
		return true
	}
	return next.Byte == bufLen && next.Bit == 0
}

// bitAt returns the bit at pos, MSB-first within its byte. The caller
// must have bounds-checked pos.
func (p *Parser) bitAt(pos Position) uint64 {
	return uint64(p.buf[pos.Byte]>>(7-pos.Bit)) & 0x1
}

// Bool reads the next bit as a boolean.
func (p *Parser) Bool() (bool, error) {
	if !hasRest(p.pos, 0, 1, p.Len()) {
		return false, &OutOfBufferError{API: "Parser.Bool", Pos: p.pos}
	}
	bit := p.bitAt(p.pos)
	p.pos = p.pos.advance(0, 1)
	return bit == 1, nil
}

// readUint reads bits bits MSB-first into a uint64 accumulator. It is
// shared by the 32- and 64-bit readers; only the public wrappers differ
// in the width they accept. A width of 0 reads nothing and returns 0
// without touching the buffer.
func (p *Parser) readUint(api string, bits uint) (uint64, error) {
	if bits == 0 {
		return 0, nil
	}
	if !hasRest(p.pos, 0, bits, p.Len()) {
		return 0, &OutOfBufferError{API: api, Pos: p.pos}
	}

	var v uint64
	pos := p.pos
	for i := uint(0); i < bits; i++ {
		v = v<<1 | p.bitAt(pos)
		pos = pos.advance(0, 1)
	}

	p.pos = pos
	return v, nil
}

// Uint32 reads bits bits, 0 to 32, as an unsigned integer.
func (p *Parser) Uint32(bits uint) (uint32, error) {
	if bits > 32 {
		return 0, &UsageError{API: "Parser.Uint32", Msg: fmt.Sprintf("width %v exceeds 32 bits", bits)}
	}
	v, err := p.readUint("Parser.Uint32", bits)
	return uint32(v), err
}

// Uint64 reads bits bits, 0 to 64, as an unsigned integer.
func (p *Parser) Uint64(bits uint) (uint64, error) {
	if bits > 64 {
		return 0, &UsageError{API: "Parser.Uint64", Msg: fmt.Sprintf("width %v exceeds 64 bits", bits)}
	}
	return p.readUint("Parser.Uint64", bits)
}

// Int32 reads bits bits and sign-extends them: the value's top bit
// within the requested width is its sign bit.
func (p *Parser) Int32(bits uint) (int32, error) {
	v, err := p.Uint32(bits)
	if err != nil {
		return 0, err
	}
	return int32(signExtend(uint64(v), bits)), nil
}

// Int64 reads bits bits and sign-extends them.
func (p *Parser) Int64(bits uint) (int64, error) {
	v, err := p.Uint64(bits)
	if err != nil {
		return 0, err
	}
	return signExtend(v, bits), nil
}

// signExtend interprets the low width bits of v as a two's-complement
// value. Shift counts of 64 or more come out zero in Go, which makes
// width 0 yield 0 and width 64 the identity, with no special cases.
func signExtend(v uint64, width uint) int64 {
	mask := uint64(1)<<width - 1
	if (v>>(width-1))&0x1 != 0 {
		return int64(^mask | v&mask)
	}
	return int64(v & mask)
}

// Bytes fills dst with len(dst) raw bytes from the cursor and advances
// past them. The cursor must be on a byte boundary.
func (p *Parser) Bytes(dst []byte) error {
	if !p.IsByteAligned() {
		return &NotByteAlignedError{Pos: p.pos}
	}
	if !hasRest(p.pos, uint64(len(dst)), 0, p.Len()) {
		return &OutOfBufferError{API: "Parser.Bytes", Pos: p.pos}
	}

	copy(dst, p.buf[p.pos.Byte:])
	p.pos = p.pos.advance(uint64(len(dst)), 0)
	return nil
}

// IsByteAligned reports whether the cursor is on a byte boundary.
func (p *Parser) IsByteAligned() bool {
	return p.pos.Bit == 0
}

// AlignByte advances the cursor to the next byte boundary. Aligning an
// already-aligned cursor, or one past the end of the buffer, is a
// no-op.
func (p *Parser) AlignByte() error {
	if p.pos.Byte >= p.Len() {
		return nil
	}
	if p.pos.Bit != 0 {
		p.pos = Position{Byte: p.pos.Byte + 1}
	}
	return nil
}

// AlignBytes advances the cursor to the next multiple-of-n byte
// boundary. An already-aligned cursor, or one past the end of the
// buffer, is left alone; a target boundary at or past the end of the
// buffer is an error.
func (p *Parser) AlignBytes(n uint) error {
	if n == 0 {
		return &UsageError{API: "Parser.AlignBytes", Msg: "zero boundary"}
	}
	if p.pos.Byte >= p.Len() {
		return nil
	}

	rem := p.pos.Byte % uint64(n)
	if rem == 0 && p.pos.Bit == 0 {
		return nil
	}

	aligned := p.pos.Byte - rem + uint64(n)
	if aligned >= p.Len() {
		return &OutOfBufferError{API: "Parser.AlignBytes", Pos: p.pos}
	}

	p.pos = Position{Byte: aligned}
	return nil
}

// IsAligned reports whether the cursor is on a multiple-of-n byte
// boundary. n must be nonzero.
func (p *Parser) IsAligned(n uint) bool {
	return p.pos.Byte%uint64(n) == 0 && p.pos.Bit == 0
}

// Seek moves the cursor to an absolute position. Only the byte
// component is validated: it must index a byte inside the buffer. The
// bit component is stored as given.
func (p *Parser) Seek(pos Position) error {
	if pos.Byte >= p.Len() {
		return &OutOfBufferError{API: "Parser.Seek", Pos: pos}
	}
	p.pos = pos
	return nil
}

// Skip moves the cursor bytes and bits forward, carrying bit overflow
// into bytes, with Seek's validation rules.
func (p *Parser) Skip(bytes uint64, bits uint) error {
	return p.Seek(p.pos.advance(bytes, bits))
}

// Dump writes the buffer length and cursor position to w. It is a
// debugging aid, not part of the decoding contract.
func (p *Parser) Dump(w io.Writer) {
	fmt.Fprintf(w, "binparser.Parser\n")
	fmt.Fprintf(w, "bufLen  = %v\n", p.Len())
	fmt.Fprintf(w, "posByte = %v\n", p.pos.Byte)
	fmt.Fprintf(w, "posBit  = %v\n", p.pos.Bit)
}
