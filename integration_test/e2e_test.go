package integration_test

import (
	"bytes"
	"log/slog"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/numgo"
)

func TestE2E_ObservedWorkflow(t *testing.T) {
	var buf bytes.Buffer
	metrics := &numgo.BasicMetricsCollector{}

	ng := numgo.New(
		numgo.WithMetricsCollector(metrics),
		numgo.WithLogger(numgo.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))),
	)

	// 1. Sieve a bound and keep the primes as a bitset.
	primes := ng.Sieve(200)
	require.Len(t, primes, 46)

	mask, err := ng.BitsetFromIndices(primes)
	require.NoError(t, err)
	require.Equal(t, 46, mask.Cardinality())

	// 2. Cross-check a few members via the primality test.
	for _, p := range []int64{2, 97, 199} {
		require.True(t, ng.IsProbablePrime(big.NewInt(p)))
	}

	// 3. Work modulo the largest sieved prime.
	m := big.NewInt(int64(primes[len(primes)-1]))
	inv, err := ng.ModularInverse(big.NewInt(42), m)
	require.NoError(t, err)

	product := new(big.Int).Mul(big.NewInt(42), inv)
	product.Mod(product, m)
	require.Zero(t, product.Cmp(big.NewInt(1)))

	// 4. Metrics and logs saw every step.
	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.SieveCount)
	assert.Equal(t, int64(46), stats.SievePrimesFound)
	assert.Equal(t, int64(3), stats.PrimeTestCount)
	assert.Equal(t, int64(1), stats.InverseCount)
	assert.Zero(t, stats.InverseErrors)
	assert.Equal(t, int64(1), stats.BitsetCount)

	out := buf.String()
	assert.Contains(t, out, "sieve completed")
	assert.Contains(t, out, "primality test completed")
	assert.Contains(t, out, "modular inverse completed")
	assert.Contains(t, out, "bitset constructed")
}

func TestE2E_ConcurrentFacade(t *testing.T) {
	metrics := &numgo.BasicMetricsCollector{}
	ng := numgo.New(
		numgo.WithMetricsCollector(metrics),
		numgo.WithRand(rand.New(rand.NewSource(1))), // nolint gosec
		numgo.WithRounds(12),
	)

	m89 := new(big.Int).Lsh(big.NewInt(1), 89)
	m89.Sub(m89, big.NewInt(1))

	const goroutines = 8
	const iterations = 25

	var g errgroup.Group
	for range goroutines {
		g.Go(func() error {
			for range iterations {
				if !ng.IsProbablePrime(m89) {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	stats := metrics.GetStats()
	assert.Equal(t, int64(goroutines*iterations), stats.PrimeTestCount)
	assert.Zero(t, stats.PrimeTestDeterministic)
}
