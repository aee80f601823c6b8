// Package bitops provides word-level bit queries and masks.
//
// These are the machine-word primitives underneath the higher-level numgo
// packages: isolating the lowest set bit, locating the highest set bit and
// building low-bit masks. All functions operate on 64-bit words; the
// arbitrary-precision counterparts live in the intset package.
package bitops

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrZeroValue is returned when an operation requires at least one set bit.
var ErrZeroValue = errors.New("value must be nonzero")

// ErrMaskWidth indicates a mask width outside the representable range.
type ErrMaskWidth struct {
	N int
}

func (e *ErrMaskWidth) Error() string {
	return fmt.Sprintf("mask width out of range [0, 64]: %d", e.N)
}

// LowBit returns the lowest set bit of x as a power of two.
//
// The identity LowBit(x) == x & (-x) holds under two's-complement
// arithmetic. LowBit(0) is 0: zero has no set bit.
//
// Example: LowBit(52) = LowBit(0b110100) = 0b100 = 4.
func LowBit(x uint64) uint64 {
	return x & -x
}

// MSBIndex returns the 0-based index of the most significant set bit.
// It fails with ErrZeroValue when x is 0.
//
// Example: MSBIndex(1024) = 10.
func MSBIndex(x uint64) (int, error) {
	if x == 0 {
		return 0, ErrZeroValue
	}
	return bits.Len64(x) - 1, nil
}

// MaskLow returns a mask with the lowest n bits set and all higher bits
// clear. n must be in [0, 64]: MaskLow(0) is 0, MaskLow(64) is all ones.
//
// Example: MaskLow(5) = 0b11111 = 31.
func MaskLow(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, &ErrMaskWidth{N: n}
	}
	if n == 64 {
		return ^uint64(0), nil
	}
	return (uint64(1) << n) - 1, nil
}

// OnesCount returns the number of set bits in x (the population count).
func OnesCount(x uint64) int {
	return bits.OnesCount64(x)
}

// IsEven reports whether n is even by testing its lowest bit.
func IsEven(n int64) bool {
	return n&1 == 0
}

// Bases holds the textual renderings of an integer in the four common
// bases, using Go literal prefixes (0b, 0o, 0x).
type Bases struct {
	Bin string
	Oct string
	Dec string
	Hex string
}

// ToBases renders n in binary, octal, decimal and hexadecimal notation.
func ToBases(n int64) Bases {
	return Bases{
		Bin: fmt.Sprintf("%#b", n),
		Oct: fmt.Sprintf("%O", n),
		Dec: fmt.Sprintf("%d", n),
		Hex: fmt.Sprintf("%#x", n),
	}
}
