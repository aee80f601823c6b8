package prime

import (
	"math/big"
	"math/rand"
	"time"

	"github.com/hupe1980/numgo/modular"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)

	// deterministicWitnesses is the fixed set checked for every candidate
	// below 2^64. The verdict contract is tied to this exact set; do not
	// reorder or substitute bases.
	deterministicWitnesses = toBig(2, 3, 5, 7, 11, 13, 17)

	// smallPrimes is the trial-division front door: equal means prime,
	// divisible means composite.
	smallPrimes = toBig(2, 3, 5, 7, 11, 13, 17, 19, 23, 29)
)

func toBig(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

// Options configures the probabilistic side of Test.
type Options struct {
	// Rounds is the number of random witnesses drawn when n >= 2^64. Below
	// that bound the fixed deterministic witness set is used and Rounds is
	// ignored. Values below 1 fall back to the default.
	Rounds int

	// Rand supplies witness draws for n >= 2^64. Sharing one generator
	// across concurrent tests requires its draws to be synchronized, for
	// example by a locking Source underneath. When nil, Test uses a
	// time-seeded generator created per call.
	Rand *rand.Rand
}

// DefaultOptions holds the defaults used by Test.
var DefaultOptions = Options{
	Rounds: 8,
}

// Test reports whether n is prime, using trial division by small primes
// followed by the Miller-Rabin compositeness test.
//
// For n below 2^64 the verdict is deterministic. For larger n a true
// result means "probably prime" with error probability at most 4^-Rounds;
// a false result is always a proof of compositeness. n below 2 is
// composite by definition, never an error.
func Test(n *big.Int, optFns ...func(o *Options)) bool {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rounds < 1 {
		opts.Rounds = DefaultOptions.Rounds
	}

	if n.Cmp(two) < 0 {
		return false
	}

	scratch := new(big.Int)
	for _, p := range smallPrimes {
		if n.Cmp(p) == 0 {
			return true
		}
		if scratch.Mod(n, p).Sign() == 0 {
			return false
		}
	}

	// n is odd and > 29 here.
	d, s := decompose(n)
	nMinus1 := new(big.Int).Sub(n, one)

	if n.BitLen() <= 64 {
		for _, a := range deterministicWitnesses {
			if !checkWitness(a, d, n, nMinus1, s) {
				return false
			}
		}
		return true
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
	}

	span := new(big.Int).Sub(n, big.NewInt(3)) // draws land in [2, n-2]
	a := new(big.Int)
	for range opts.Rounds {
		a.Rand(rng, span)
		a.Add(a, two)
		if !checkWitness(a, d, n, nMinus1, s) {
			return false
		}
	}
	return true
}

// TestUint64 reports whether n is prime. Every uint64 lies below the
// fixed-witness bound, so the verdict is always deterministic.
func TestUint64(n uint64) bool {
	return Test(new(big.Int).SetUint64(n))
}

// decompose writes n-1 as d * 2^s with d odd.
func decompose(n *big.Int) (d *big.Int, s uint) {
	d = new(big.Int).Sub(n, one)
	s = d.TrailingZeroBits()
	d.Rsh(d, s)
	return d, s
}

// checkWitness reports whether witness a leaves n possibly prime. A false
// result proves n composite.
func checkWitness(a, d, n, nMinus1 *big.Int, s uint) bool {
	x, _ := modular.Exp(a, d, n) // n >= 3 and d >= 1, so Exp cannot fail
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := uint(1); i < s; i++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}
