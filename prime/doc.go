// Package prime implements primality testing and bounded prime
// enumeration.
//
// # Miller-Rabin
//
// Test classifies an integer as prime or composite:
//
//	prime.Test(big.NewInt(1_000_003)) // true
//
// For inputs below 2^64 the verdict is deterministic: a fixed witness set
// is probed in full, with no randomness involved. Above 2^64 the test is
// probabilistic; witnesses are drawn from an injected generator so runs
// are reproducible under a fixed seed:
//
//	rng := rand.New(rand.NewSource(4711))
//	ok := prime.Test(n, func(o *prime.Options) {
//	    o.Rounds = 16
//	    o.Rand = rng
//	})
//
// A false result is always a proof of compositeness; a true result above
// 2^64 means "probably prime" with error probability at most 4^-Rounds.
//
// # Sieving
//
// Sieve enumerates all primes up to a limit using an odd-only compressed
// Sieve of Eratosthenes (half the memory of a full mark array), SieveRange
// enumerates a window [lo, hi] without sieving everything below lo, and
// NewSet compresses sieve output into a Roaring bitmap for fast repeated
// membership probes:
//
//	primes := prime.Sieve(1000)
//	window := prime.SieveRange(1_000_000, 1_000_100)
//	set := prime.NewSet(1000)
//	set.Contains(997) // true
package prime
