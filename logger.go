package numgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with numgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLimit adds a limit field to the logger (useful for tagging sieve runs).
func (l *Logger) WithLimit(limit int) *Logger {
	return &Logger{
		Logger: l.Logger.With("limit", limit),
	}
}

// WithRounds adds a rounds (witness count) field to the logger.
func (l *Logger) WithRounds(rounds int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rounds", rounds),
	}
}

// WithBitLen adds a bit_len field to the logger.
func (l *Logger) WithBitLen(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bit_len", bits),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogPrimeTest logs a primality test.
func (l *Logger) LogPrimeTest(bitLen int, deterministic, probablePrime bool) {
	l.Debug("primality test completed",
		"bit_len", bitLen,
		"deterministic", deterministic,
		"probable_prime", probablePrime,
	)
}

// LogSieve logs a sieve run.
func (l *Logger) LogSieve(limit, count int) {
	l.Debug("sieve completed",
		"limit", limit,
		"count", count,
	)
}

// LogSieveRange logs a windowed sieve run.
func (l *Logger) LogSieveRange(lo, hi, count int) {
	l.Debug("range sieve completed",
		"lo", lo,
		"hi", hi,
		"count", count,
	)
}

// LogGCD logs an extended GCD computation.
func (l *Logger) LogGCD(aBits, bBits int) {
	l.Debug("gcd completed",
		"a_bits", aBits,
		"b_bits", bBits,
	)
}

// LogInverse logs a modular inverse computation.
func (l *Logger) LogInverse(modulusBits int, err error) {
	if err != nil {
		l.Error("modular inverse failed",
			"modulus_bits", modulusBits,
			"error", err,
		)
	} else {
		l.Debug("modular inverse completed",
			"modulus_bits", modulusBits,
		)
	}
}

// LogExponent logs a modular exponentiation.
func (l *Logger) LogExponent(exponentBits int, err error) {
	if err != nil {
		l.Error("modular exponentiation failed",
			"exponent_bits", exponentBits,
			"error", err,
		)
	} else {
		l.Debug("modular exponentiation completed",
			"exponent_bits", exponentBits,
		)
	}
}

// LogBitset logs a bitset construction.
func (l *Logger) LogBitset(count int, err error) {
	if err != nil {
		l.Error("bitset construction failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("bitset constructed",
			"count", count,
		)
	}
}
