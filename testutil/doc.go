// Package testutil provides deterministic helpers shared by tests and
// benchmarks: a seeded, thread-safe randomness source and fixture values
// with known primality.
//
// Production code must not import this package.
package testutil
