// Package intset provides an immutable set of non-negative integers backed
// by a single arbitrary-precision integer.
//
// A Set stores member i as bit i of a big.Int, so membership, insertion and
// removal are single-bit operations and the set algebra (union,
// intersection, difference) maps onto word-wise boolean instructions. There
// is no fixed upper bound on members: the backing integer grows on demand,
// one 64-bit word (32-bit on small platforms) at a time, managed entirely
// by math/big.
//
// # Value Semantics
//
// Sets are immutable. Every operation that would change membership returns
// a new Set and leaves the receiver untouched:
//
//	s, _ := intset.FromIndices([]int{0, 2, 5})
//	t, _ := s.Add(3)       // s still {0 2 5}, t is {0 2 3 5}
//	u, _ := t.Remove(2)    // t unchanged, u is {0 3 5}
//
// The zero value is the empty set and is ready to use. Because no operation
// mutates shared state, Sets may be copied, stored and read from any number
// of goroutines without synchronization.
//
// # Iteration
//
// Iterator returns a lazy ascending sequence over the members:
//
//	for i := range s.Iterator() {
//	    fmt.Println(i)
//	}
//
// Each range re-derives the walk from the set value, so iteration is
// restartable and loops never share cursor state.
package intset
