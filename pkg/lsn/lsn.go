package lsn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pagestore/testkit/internal"
)

// ErrMalformed is returned by Parse when the input is not a canonical
// two-word hexadecimal LSN.
const ErrMalformed = internal.Error("malformed LSN")

// LSN is a 64-bit log sequence number: a position in the append-only WAL.
// The textual form splits the value into its high and low 32-bit words,
// e.g. 0x123456789ABCDEF0 reads as "12345678/9ABCDEF0".
//
// The zero value points to the very beginning of the log. LSNs compare with
// plain integer operators.
type LSN uint64

// String implements fmt.Stringer. Both words are written in upper-case
// hexadecimal without leading zeros, separated by a single '/'.
func (x LSN) String() string {
	return fmt.Sprintf("%X/%X", uint64(x)>>32, uint64(x)&0xFFFFFFFF)
}

// Parse restores an LSN from its textual form (see String). Hex digit case
// is ignored.
//
// Parse is strict: the input must contain exactly one '/', and each word
// must be valid hex fitting in 32 bits. Strings that String could not have
// produced, including ones where a word overflows its half, are rejected
// with an error wrapping ErrMalformed.
func Parse(s string) (LSN, error) {
	left, right, found := strings.Cut(s, "/")
	if !found || strings.Contains(right, "/") {
		return 0, fmt.Errorf("%w: expected HIGH/LOW hex pair, got %q", ErrMalformed, s)
	}

	hi, err := strconv.ParseUint(left, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: high word %q: %v", ErrMalformed, left, err)
	}

	lo, err := strconv.ParseUint(right, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: low word %q: %v", ErrMalformed, right, err)
	}

	return LSN(hi<<32 | lo), nil
}
