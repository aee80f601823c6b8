package prime

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a compressed membership set of primes backed by a 32-bit Roaring
// bitmap. Build one when the same bound serves many Contains probes; a
// single probe is cheaper through Sieve directly.
//
// Values live in the 32-bit space of the underlying bitmap, which covers
// every limit the in-memory sieve can realistically be asked for.
type Set struct {
	rb *roaring.Bitmap
}

// NewSet sieves all primes up to limit into a Set. A limit below 2 yields
// the empty set. Primes beyond the bitmap's 32-bit space are not
// representable and are omitted.
func NewSet(limit int) *Set {
	rb := roaring.New()
	for _, p := range Sieve(limit) {
		if p > math.MaxUint32 {
			break
		}
		rb.Add(uint32(p))
	}
	return &Set{rb: rb}
}

// Contains reports whether v is a member. Values outside the sieved bound
// or the bitmap's 32-bit space are reported absent, not re-tested.
func (s *Set) Contains(v int) bool {
	if v < 0 || v > math.MaxUint32 {
		return false
	}
	return s.rb.Contains(uint32(v))
}

// Cardinality returns the number of members: pi(limit) for a freshly built
// Set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Max returns the largest member. The second result is false when the set
// is empty.
func (s *Set) Max() (int, bool) {
	if s.rb.IsEmpty() {
		return 0, false
	}
	return int(s.rb.Maximum()), true
}

// Iterator returns an iterator over the members in ascending order.
func (s *Set) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Slice returns the members in ascending order as a fresh slice.
func (s *Set) Slice() []int {
	out := make([]int, 0, s.rb.GetCardinality())
	for v := range s.Iterator() {
		out = append(out, v)
	}
	return out
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// And intersects the set with other in place.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Or unions the set with other in place.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}
