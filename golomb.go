package binparser

// UnsignedGolomb decodes one unsigned Exponential-Golomb code: a run of
// zero bits, a terminating 1 bit, then as many suffix bits as there
// were zeros. The decoded value is suffix + 2^zeros - 1, so the bit
// patterns 1, 010, 011, 00100 decode to 0, 1, 2, 3.
//
// The decode works on a local copy of the cursor and commits it once,
// so a code whose prefix or terminator runs off the end of the buffer
// fails with the cursor untouched. A suffix cut short by the end of the
// buffer is truncated rather than rejected, for bit-exact compatibility
// with the streams this decoder was built against; the cursor then
// stops at the end of the buffer.
func (p *Parser) UnsignedGolomb() (uint32, error) {
	pos := p.pos
	bufLen := p.Len()

	// Count the run of zero bits before the terminator.
	zeros := uint(0)
	for pos.Byte < bufLen {
		if p.bitAt(pos) == 1 {
			break
		}
		zeros++
		pos = pos.advance(0, 1)
	}

	// Consume the terminating 1 bit.
	if pos.Byte >= bufLen {
		return 0, &OutOfBufferError{API: "Parser.UnsignedGolomb", Pos: p.pos}
	}
	pos = pos.advance(0, 1)

	// Suffix: zeros more bits, MSB-first, truncated at end of buffer.
	var v uint32
	for i := uint(0); i < zeros && pos.Byte < bufLen; i++ {
		v = v<<1 | uint32(p.bitAt(pos))
		pos = pos.advance(0, 1)
	}
	v += 1<<zeros - 1

	p.pos = pos
	return v, nil
}

// SignedGolomb decodes one signed Exp-Golomb code. The unsigned code
// sequence 0,1,2,3,4,... maps to 0,+1,-1,+2,-2,...: odd codes are
// positive, even codes negative.
func (p *Parser) SignedGolomb() (int32, error) {
	u, err := p.UnsignedGolomb()
	if err != nil {
		return 0, err
	}
	if u&0x1 != 0 {
		return int32(u>>1) + 1, nil
	}
	return -int32(u >> 1), nil
}
