package numgo

import (
	"bytes"
	"errors"
	"log/slog"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/numgo/intset"
	"github.com/hupe1980/numgo/modular"
	"github.com/hupe1980/numgo/prime"
)

func TestNumgo(t *testing.T) {
	t.Run("Primality", func(t *testing.T) {
		ng := New()

		assert.True(t, ng.IsProbablePrime(big.NewInt(2)))
		assert.False(t, ng.IsProbablePrime(big.NewInt(1)))
		assert.False(t, ng.IsProbablePrime(big.NewInt(341)))
		assert.True(t, ng.IsProbablePrime(big.NewInt(2305843009213693951))) // 2^61 - 1
	})

	t.Run("Sieve", func(t *testing.T) {
		ng := New()

		assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}, ng.Sieve(50))
		assert.Empty(t, ng.Sieve(1))
		assert.Equal(t, []int{2}, ng.Sieve(2))
	})

	t.Run("SieveRange", func(t *testing.T) {
		ng := New()

		assert.Equal(t, []int{97}, ng.SieveRange(90, 100))
		assert.Empty(t, ng.SieveRange(14, 16))
	})

	t.Run("PrimeSet", func(t *testing.T) {
		ng := New()

		set := ng.PrimeSet(100)
		assert.Equal(t, uint64(25), set.Cardinality())
		assert.True(t, set.Contains(97))
		assert.False(t, set.Contains(100))
	})

	t.Run("ExtendedGCD", func(t *testing.T) {
		ng := New()

		g, x, y := ng.ExtendedGCD(big.NewInt(240), big.NewInt(46))
		assert.Zero(t, g.Cmp(big.NewInt(2)))

		// a*x + b*y = g
		lhs := new(big.Int).Mul(big.NewInt(240), x)
		lhs.Add(lhs, new(big.Int).Mul(big.NewInt(46), y))
		assert.Zero(t, lhs.Cmp(g))
	})

	t.Run("GCDAndLCM", func(t *testing.T) {
		ng := New()

		assert.Zero(t, ng.GCD(big.NewInt(54), big.NewInt(24)).Cmp(big.NewInt(6)))
		assert.Zero(t, ng.LCM(big.NewInt(4), big.NewInt(6)).Cmp(big.NewInt(12)))
	})

	t.Run("ModularInverse", func(t *testing.T) {
		ng := New()

		inv, err := ng.ModularInverse(big.NewInt(3), big.NewInt(11))
		require.NoError(t, err)
		assert.Zero(t, inv.Cmp(big.NewInt(4)))
	})

	t.Run("ModularExponent", func(t *testing.T) {
		ng := New()

		pow, err := ng.ModularExponent(big.NewInt(5), big.NewInt(117), big.NewInt(19))
		require.NoError(t, err)

		want, err := modular.Exp(big.NewInt(5), big.NewInt(117), big.NewInt(19))
		require.NoError(t, err)
		assert.Zero(t, pow.Cmp(want))
	})

	t.Run("BitsetFromIndices", func(t *testing.T) {
		ng := New()

		set, err := ng.BitsetFromIndices([]int{0, 2, 5})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 5}, set.Slice())
	})
}

func TestNumgoErrorTranslation(t *testing.T) {
	ng := New()

	t.Run("NoInverse", func(t *testing.T) {
		_, err := ng.ModularInverse(big.NewInt(4), big.NewInt(8))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoInverse)

		// The typed subpackage error stays reachable underneath.
		var ni *modular.ErrNoInverse
		require.ErrorAs(t, err, &ni)
		assert.Zero(t, ni.A.Cmp(big.NewInt(4)))
		assert.Zero(t, ni.M.Cmp(big.NewInt(8)))
	})

	t.Run("NonPositiveModulus", func(t *testing.T) {
		_, err := ng.ModularInverse(big.NewInt(3), big.NewInt(0))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("NegativeExponent", func(t *testing.T) {
		_, err := ng.ModularExponent(big.NewInt(2), big.NewInt(-1), big.NewInt(7))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("NegativeIndex", func(t *testing.T) {
		_, err := ng.BitsetFromIndices([]int{3, -1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		var nidx *intset.ErrNegativeIndex
		require.ErrorAs(t, err, &nidx)
		assert.Equal(t, -1, nidx.Index)
	})
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	// Unknown errors pass through untouched.
	sentinel := errors.New("boom")
	assert.Same(t, sentinel, translateError(sentinel))
}

func TestNumgoOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		ng := New()
		assert.Equal(t, prime.DefaultOptions.Rounds, ng.rounds)
		assert.Nil(t, ng.rng)
	})

	t.Run("RoundsFallback", func(t *testing.T) {
		ng := New(WithRounds(-5))
		assert.Equal(t, prime.DefaultOptions.Rounds, ng.rounds)
	})

	t.Run("InjectedRandDrawsMatchSource", func(t *testing.T) {
		// The lock around the injected generator must not alter its
		// stream: an equally seeded bare generator draws the same values.
		ng := New(WithRand(rand.New(rand.NewSource(42))))
		direct := rand.New(rand.NewSource(42))
		for range 4 {
			assert.Equal(t, direct.Int63(), ng.rng.Int63())
		}
	})

	t.Run("NilCollaborators", func(t *testing.T) {
		ng := New(WithMetricsCollector(nil), WithLogger(nil))
		assert.True(t, ng.IsProbablePrime(big.NewInt(97)))
	})

	t.Run("NilOption", func(t *testing.T) {
		ng := New(nil, WithRounds(4))
		assert.Equal(t, 4, ng.rounds)
	})
}

func TestNumgoMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	ng := New(WithMetricsCollector(metrics))

	ng.Sieve(100)
	ng.IsProbablePrime(big.NewInt(97))
	ng.ExtendedGCD(big.NewInt(54), big.NewInt(24))
	_, _ = ng.ModularInverse(big.NewInt(3), big.NewInt(11))
	_, _ = ng.ModularInverse(big.NewInt(4), big.NewInt(8)) // no inverse
	_, _ = ng.ModularExponent(big.NewInt(2), big.NewInt(10), big.NewInt(1000))
	_, _ = ng.BitsetFromIndices([]int{1, 2, 3})

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.SieveCount)
	assert.Equal(t, int64(25), stats.SievePrimesFound)
	assert.Equal(t, int64(1), stats.PrimeTestCount)
	assert.Equal(t, int64(1), stats.PrimeTestDeterministic)
	assert.Equal(t, int64(1), stats.GCDCount)
	assert.Equal(t, int64(2), stats.InverseCount)
	assert.Equal(t, int64(1), stats.InverseErrors)
	assert.Equal(t, int64(1), stats.ExponentCount)
	assert.Zero(t, stats.ExponentErrors)
	assert.Equal(t, int64(1), stats.BitsetCount)
	assert.Zero(t, stats.BitsetErrors)
}

func TestNumgoLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ng := New(WithLogger(logger))
	ng.Sieve(50)

	out := buf.String()
	assert.Contains(t, out, "sieve completed")
	assert.Contains(t, out, "limit=50")
	assert.Contains(t, out, "count=15")

	buf.Reset()
	_, _ = ng.ModularInverse(big.NewInt(4), big.NewInt(8))
	assert.Contains(t, buf.String(), "modular inverse failed")
}

func TestNumgoConcurrent(t *testing.T) {
	// A shared instance with an injected randomness source must stay safe
	// under concurrent use; draws are serialized internally. Mixing a prime
	// and a composite candidate keeps every goroutine drawing witnesses
	// until a verdict on both paths.
	ng := New(
		WithRounds(16),
		WithRand(rand.New(rand.NewSource(42))),
	)

	m89 := new(big.Int).Lsh(big.NewInt(1), 89)
	m89.Sub(m89, big.NewInt(1))

	f6 := new(big.Int).Lsh(big.NewInt(1), 64)
	f6.Add(f6, big.NewInt(1)) // 274177 * 67280421310721

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for range 20 {
				if !ng.IsProbablePrime(m89) {
					return assert.AnError
				}
				if ng.IsProbablePrime(f6) {
					return assert.AnError
				}
				if len(ng.Sieve(200)) != 46 {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
