package testutil

import (
	"math/big"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Int64s fills dst with pseudo-random int64 values in [0, bound).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Int64s(dst []int64, bound int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Int63n(bound)
	}
}

// BigInt returns a pseudo-random value in [0, 2^bits).
func (r *RNG) BigInt(bits uint) *big.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	bound := new(big.Int).Lsh(big.NewInt(1), bits)
	return new(big.Int).Rand(r.rand, bound)
}

// OddBigInt returns a pseudo-random odd value of exactly the given bit
// length. Handy as a primality test candidate. bits must be at least 1.
func (r *RNG) OddBigInt(bits uint) *big.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	bound := new(big.Int).Lsh(big.NewInt(1), bits-1)
	n := new(big.Int).Rand(r.rand, bound)
	n.SetBit(n, int(bits-1), 1) // force the top bit
	n.SetBit(n, 0, 1)           // force oddness
	return n
}

// KnownPrimes returns primes spanning small values up to the 64-bit
// boundary, freshly allocated per call.
func KnownPrimes() []*big.Int {
	return parseAll(
		"2", "3", "5", "31", "97", "7919",
		"2147483647",           // 2^31 - 1
		"1000000007",           // common test modulus
		"2305843009213693951",  // 2^61 - 1
		"18446744073709551557", // largest prime below 2^64
	)
}

// KnownComposites returns composites that defeat weak primality checks:
// Carmichael numbers and strong pseudoprimes to several small bases.
func KnownComposites() []*big.Int {
	return parseAll(
		"341",     // 11 * 31, base-2 Fermat pseudoprime
		"561",     // 3 * 11 * 17, Carmichael
		"1105",    // 5 * 13 * 17, Carmichael
		"1373653", // strong pseudoprime to bases 2, 3
		"25326001",
		"3215031751",
		"2152302898747",
		"3474749660383",
		"18446744073709551615", // 2^64 - 1
	)
}

func parseAll(values ...string) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			panic("testutil: bad constant " + v)
		}
		out[i] = n
	}
	return out
}
