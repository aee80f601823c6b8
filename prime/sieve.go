package prime

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/numgo/intset"
)

// Sieve returns all primes <= limit in ascending order, freshly allocated
// per call. A limit below 2 yields no primes.
//
// The sieve stores odd candidates only: bit i stands for the value 2i+1
// and a set bit marks a known composite, so the mark array needs
// ceil(limit/2) bits instead of one per candidate. Marking starts at i*i
// for each prime i, since smaller odd multiples already carry a smaller
// prime factor, and steps by i in index space, which visits exactly the
// odd multiples.
func Sieve(limit int) []int {
	if limit < 2 {
		return nil
	}

	// Index 0 would stand for the value 1 and stays unused; the last index
	// (limit-1)/2 covers limit itself when odd.
	size := (limit-1)/2 + 1
	composite := bitset.New(uint(size))

	root := isqrt(limit)
	for i := 3; i <= root; i += 2 {
		if composite.Test(uint(i / 2)) {
			continue
		}
		for j := (i * i) / 2; j < size; j += i {
			composite.Set(uint(j))
		}
	}

	primes := make([]int, 0, size/2+1)
	primes = append(primes, 2)
	for i := 1; i < size; i++ {
		if !composite.Test(uint(i)) {
			primes = append(primes, 2*i+1)
		}
	}
	return primes
}

// SieveRange returns the primes in [lo, hi] in ascending order. It sieves
// only the requested window against the base primes up to sqrt(hi), so a
// narrow window far from zero stays cheap. An empty or sub-2 range yields
// no primes.
func SieveRange(lo, hi int) []int {
	if hi < 2 || hi < lo {
		return nil
	}
	if lo < 2 {
		lo = 2
	}

	composite := bitset.New(uint(hi - lo + 1))
	for _, p := range Sieve(isqrt(hi)) {
		// First multiple of p inside the window, never below p*p so the
		// base primes themselves survive.
		start := ((lo + p - 1) / p) * p
		if pp := p * p; pp > start {
			start = pp
		}
		for j := start; j <= hi; j += p {
			composite.Set(uint(j - lo))
		}
	}

	var primes []int
	for v := lo; v <= hi; v++ {
		if !composite.Test(uint(v - lo)) {
			primes = append(primes, v)
		}
	}
	return primes
}

// Mask returns the primes up to limit as an intset.Set, ready for set
// algebra against caller-provided index sets.
func Mask(limit int) intset.Set {
	s, _ := intset.FromIndices(Sieve(limit)) // primes are never negative
	return s
}

// isqrt returns the integer square root of n: the largest r with r*r <= n.
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
