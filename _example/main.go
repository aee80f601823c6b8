package main

import (
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"time"

	"github.com/hupe1980/numgo"
)

func main() {
	seed := int64(4711)
	limit := 10_000_000

	ng := numgo.New(
		numgo.WithRounds(16),
		numgo.WithRand(rand.New(rand.NewSource(seed))),
	)

	fmt.Println("--- Sieve ---")
	fmt.Println("Limit:", limit)

	start := time.Now()
	primes := ng.Sieve(limit)
	end := time.Since(start)

	fmt.Println("Primes found:", len(primes))
	fmt.Println("Largest:", primes[len(primes)-1])
	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	fmt.Println("--- Primality ---")

	m127 := new(big.Int).Lsh(big.NewInt(1), 127)
	m127.Sub(m127, big.NewInt(1))

	start = time.Now()
	verdict := ng.IsProbablePrime(m127)
	end = time.Since(start)

	fmt.Println("Candidate: 2^127 - 1")
	fmt.Println("Probably prime:", verdict)
	fmt.Printf("Millis: %.2f\n\n", float64(end.Microseconds())/1000)

	fmt.Println("--- Modular arithmetic ---")

	m := big.NewInt(1_000_000_007)
	inv, err := ng.ModularInverse(big.NewInt(123456789), m)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("inverse(123456789) mod 1e9+7 =", inv)

	pow, err := ng.ModularExponent(big.NewInt(2), big.NewInt(1_000_000), m)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("2^1000000 mod 1e9+7 =", pow)
}
