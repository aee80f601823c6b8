package numgo

import (
	"log/slog"
	"math/rand"
	"sync"

	"github.com/hupe1980/numgo/prime"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	rounds           int
	rng              *rand.Rand
}

// Option configures Numgo constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. rounds-specific constructor variants).
type Option func(*options)

// WithRounds configures the number of witness rounds for primality tests
// above the deterministic bound. Values below 1 fall back to the default.
//
// Each extra round divides the residual error probability of a "probably
// prime" verdict by four.
func WithRounds(rounds int) Option {
	return func(o *options) {
		o.rounds = rounds
	}
}

// WithRand configures the randomness source used to draw witnesses for
// primality tests above the deterministic bound. A fixed seed makes those
// verdicts reproducible run to run.
//
// Draws from the source are serialized internally, so the Numgo instance
// stays safe for concurrent use. If nil (the default), each test draws
// from its own time-seeded source.
//
// Example with reproducible verdicts:
//
//	ng := numgo.New(numgo.WithRand(rand.New(rand.NewSource(42))))
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &numgo.BasicMetricsCollector{}
//	ng := numgo.New(numgo.WithMetricsCollector(metrics))
//	// ... use ng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Sieves: %d, Avg latency: %dns\n", stats.SieveCount, stats.SieveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := numgo.NewJSONLogger(slog.LevelInfo)
//	ng := numgo.New(numgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		rounds:           prime.DefaultOptions.Rounds,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// lockedSource serializes draws from a caller-supplied generator. The
// rand.Rand built on top keeps no draw state of its own, so tests running
// on different goroutines contend only for individual draws, never for
// each other's witness loops.
type lockedSource struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}
