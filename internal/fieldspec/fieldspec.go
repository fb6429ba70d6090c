// Package fieldspec parses the compact field-specification strings the
// binparse CLI uses to describe a bitstream layout, e.g.
// "magic:u8 flag width:ue delta:se payload:b4".
package fieldspec

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies how a field is decoded.
type Kind int

const (
	// Uint is an unsigned integer of N bits.
	Uint Kind = iota
	// Int is a signed (two's-complement) integer of N bits.
	Int
	// Flag is a single bit read as a boolean.
	Flag
	// UGolomb is an unsigned Exp-Golomb code.
	UGolomb
	// SGolomb is a signed Exp-Golomb code.
	SGolomb
	// Bytes is a run of N raw bytes.
	Bytes
	// Align aligns the cursor to an N-byte boundary (N=1 for plain
	// byte alignment).
	Align
	// Skip discards N bits.
	Skip
)

// A Field is one decoded element of a field spec.
type Field struct {
	// Name is the optional label given before a colon, e.g. "width" in
	// "width:ue". Empty when the token is unlabeled.
	Name string
	// Token is the raw spec token the field was parsed from.
	Token string
	Kind  Kind
	// N is the bit width (Uint, Int, Skip), byte count (Bytes), or
	// boundary (Align). Unused for Flag, UGolomb, and SGolomb.
	N uint
}

// A ParseError describes a malformed token in a field spec.
type ParseError struct {
	Token string
	Index int // 1-based token position
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fieldspec: bad token %q at position %v: %v", e.Token, e.Index, e.Msg)
}

// Parse parses a field spec: tokens separated by whitespace or commas,
// each optionally labeled "name:", with one of the forms
// u<N>, i<N>, flag, ue, se, b<N>, align, align<N>, skip<N>.
func Parse(s string) ([]Field, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var fields []Field
	for i, tok := range tokens {
		f, err := parseToken(tok, i+1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseToken(tok string, index int) (Field, error) {
	f := Field{Token: tok}

	spec := tok
	if c := strings.IndexByte(spec, ':'); c >= 0 {
		f.Name = spec[:c]
		spec = spec[c+1:]
		if f.Name == "" {
			return Field{}, &ParseError{Token: tok, Index: index, Msg: "empty name"}
		}
	}

	switch spec {
	case "flag":
		f.Kind = Flag
		return f, nil
	case "ue":
		f.Kind = UGolomb
		return f, nil
	case "se":
		f.Kind = SGolomb
		return f, nil
	case "align":
		f.Kind = Align
		f.N = 1
		return f, nil
	}

	kind, num, max := Uint, "", uint64(64)
	switch {
	case strings.HasPrefix(spec, "align"):
		kind, num, max = Align, spec[len("align"):], 1<<32
	case strings.HasPrefix(spec, "skip"):
		kind, num, max = Skip, spec[len("skip"):], 1<<32
	case strings.HasPrefix(spec, "u"):
		kind, num, max = Uint, spec[1:], 64
	case strings.HasPrefix(spec, "i"):
		kind, num, max = Int, spec[1:], 64
	case strings.HasPrefix(spec, "b"):
		kind, num, max = Bytes, spec[1:], 1<<32
	default:
		return Field{}, &ParseError{Token: tok, Index: index, Msg: "unknown field type"}
	}

	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return Field{}, &ParseError{Token: tok, Index: index, Msg: "missing or malformed size"}
	}
	if n == 0 || n > max {
		return Field{}, &ParseError{Token: tok, Index: index, Msg: fmt.Sprintf("size must be in [1,%v]", max)}
	}

	f.Kind = kind
	f.N = uint(n)
	return f, nil
}
