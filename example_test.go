package numgo_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/hupe1980/numgo"
)

// Example_quickStart demonstrates sieving and primality testing through a
// single handle.
func Example_quickStart() {
	ng := numgo.New()

	fmt.Println(ng.Sieve(30))
	fmt.Println(ng.IsProbablePrime(big.NewInt(97)))
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
	// true
}

// ExampleNumgo_SieveRange demonstrates sieving a narrow window far from zero.
func ExampleNumgo_SieveRange() {
	ng := numgo.New()

	fmt.Println(ng.SieveRange(90, 100))
	// Output: [97]
}

// ExampleNumgo_ExtendedGCD demonstrates the Bezout identity a*x + b*y = g.
func ExampleNumgo_ExtendedGCD() {
	ng := numgo.New()

	g, x, y := ng.ExtendedGCD(big.NewInt(240), big.NewInt(46))
	fmt.Printf("gcd=%s x=%s y=%s\n", g, x, y)
	// Output: gcd=2 x=-9 y=47
}

// ExampleNumgo_ModularInverse demonstrates computing a modular inverse.
func ExampleNumgo_ModularInverse() {
	ng := numgo.New()

	inv, err := ng.ModularInverse(big.NewInt(3), big.NewInt(11))
	if err != nil {
		panic(err)
	}

	fmt.Println(inv)
	// Output: 4
}

// ExampleNumgo_ModularInverse_noInverse demonstrates the error when the
// operand and the modulus share a factor.
func ExampleNumgo_ModularInverse_noInverse() {
	ng := numgo.New()

	_, err := ng.ModularInverse(big.NewInt(4), big.NewInt(8))
	fmt.Println(errors.Is(err, numgo.ErrNoInverse))
	// Output: true
}

// ExampleNumgo_ModularExponent demonstrates modular exponentiation.
func ExampleNumgo_ModularExponent() {
	ng := numgo.New()

	pow, err := ng.ModularExponent(big.NewInt(5), big.NewInt(3), big.NewInt(13))
	if err != nil {
		panic(err)
	}

	fmt.Println(pow)
	// Output: 8
}

// ExampleNumgo_BitsetFromIndices demonstrates building a pure bitset and
// applying set algebra.
func ExampleNumgo_BitsetFromIndices() {
	ng := numgo.New()

	odds, err := ng.BitsetFromIndices([]int{1, 3, 5, 7, 9})
	if err != nil {
		panic(err)
	}

	primes, err := ng.BitsetFromIndices(ng.Sieve(10))
	if err != nil {
		panic(err)
	}

	fmt.Println(primes.Intersect(odds))
	// Output: {3 5 7}
}
