package intset

import (
	"fmt"
	"iter"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// ErrNegativeIndex indicates an index below zero, which can never be a set
// member.
type ErrNegativeIndex struct {
	Index int
}

func (e *ErrNegativeIndex) Error() string {
	return fmt.Sprintf("negative index: %d", e.Index)
}

// Set is a set of non-negative integers, represented as bit positions
// inside a single big integer: bit i is set exactly when i is a member.
//
// The zero value is the empty set. Sets are immutable; see the package
// documentation for the value semantics.
type Set struct {
	bits *big.Int
}

// emptyBits backs zero-value Sets. It is shared and must never be used as
// an operation receiver.
var emptyBits = new(big.Int)

func (s Set) value() *big.Int {
	if s.bits == nil {
		return emptyBits
	}
	return s.bits
}

// FromIndices builds a Set from a collection of indices. Duplicates
// collapse. It fails with ErrNegativeIndex if any index is negative.
func FromIndices(indices []int) (Set, error) {
	acc := new(big.Int)
	for _, i := range indices {
		if i < 0 {
			return Set{}, &ErrNegativeIndex{Index: i}
		}
		acc.SetBit(acc, i, 1)
	}
	return Set{bits: acc}, nil
}

// Add returns a Set with i as a member. It fails with ErrNegativeIndex if
// i is negative.
func (s Set) Add(i int) (Set, error) {
	if i < 0 {
		return Set{}, &ErrNegativeIndex{Index: i}
	}
	return Set{bits: new(big.Int).SetBit(s.value(), i, 1)}, nil
}

// Remove returns a Set without i. It fails with ErrNegativeIndex if i is
// negative.
func (s Set) Remove(i int) (Set, error) {
	if i < 0 {
		return Set{}, &ErrNegativeIndex{Index: i}
	}
	return Set{bits: new(big.Int).SetBit(s.value(), i, 0)}, nil
}

// Contains reports whether i is a member. A negative i is never a member,
// so Contains reports false rather than failing.
func (s Set) Contains(i int) bool {
	if i < 0 {
		return false
	}
	return s.value().Bit(i) == 1
}

// Iterator returns an iterator over the members in ascending order.
//
// The walk repeatedly clears the lowest set bit of each backing word
// (Kernighan's technique), so a full pass costs O(members) beyond the word
// scan. Iteration is restartable: each range starts over from the set
// value.
func (s Set) Iterator() iter.Seq[int] {
	words := s.value().Bits()
	return func(yield func(int) bool) {
		for wi, w := range words {
			base := wi * bits.UintSize
			for v := uint(w); v != 0; v &= v - 1 {
				if !yield(base + bits.TrailingZeros(v)) {
					return
				}
			}
		}
	}
}

// Slice returns the members in ascending order as a fresh slice.
func (s Set) Slice() []int {
	out := make([]int, 0, s.Cardinality())
	for i := range s.Iterator() {
		out = append(out, i)
	}
	return out
}

// Cardinality returns the number of members.
func (s Set) Cardinality() int {
	n := 0
	for _, w := range s.value().Bits() {
		n += bits.OnesCount(uint(w))
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return s.value().Sign() == 0
}

// Equal reports whether s and o have the same members.
func (s Set) Equal(o Set) bool {
	return s.value().Cmp(o.value()) == 0
}

// Clone returns a copy with independent backing storage.
func (s Set) Clone() Set {
	return Set{bits: new(big.Int).Set(s.value())}
}

// Union returns the set of members of s or o.
func (s Set) Union(o Set) Set {
	return Set{bits: new(big.Int).Or(s.value(), o.value())}
}

// Intersect returns the set of members of both s and o.
func (s Set) Intersect(o Set) Set {
	return Set{bits: new(big.Int).And(s.value(), o.value())}
}

// Difference returns the set of members of s that are not members of o.
func (s Set) Difference(o Set) Set {
	return Set{bits: new(big.Int).AndNot(s.value(), o.value())}
}

// Min returns the smallest member. The second result is false when the set
// is empty.
func (s Set) Min() (int, bool) {
	v := s.value()
	if v.Sign() == 0 {
		return 0, false
	}
	return int(v.TrailingZeroBits()), true
}

// Max returns the largest member, the most-significant-bit index of the
// backing integer. The second result is false when the set is empty.
func (s Set) Max() (int, bool) {
	v := s.value()
	if v.Sign() == 0 {
		return 0, false
	}
	return v.BitLen() - 1, true
}

// String renders the members in ascending order, e.g. "{0 2 5}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := range s.Iterator() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteByte('}')
	return b.String()
}
