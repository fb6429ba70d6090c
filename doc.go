// Package binparser implements a stateful bit-level reader over a byte
// buffer. It extracts, sequentially:
// * single bits as booleans
// * fixed-width signed and unsigned integers up to 64 bits
// * raw byte runs
// * unsigned and signed Exponential-Golomb codes
//
// Bits are consumed most-significant-first within each byte, the
// convention used by H.26x-style bitstreams. The Parser tracks a
// byte+bit cursor and bounds-checks every operation; a failed read
// leaves the cursor where it was.
//
// The buffer is borrowed, never copied or mutated, and must remain
// valid for the Parser's lifetime. A Parser is not safe for concurrent
// use.
package binparser
