// Package modular implements exact integer arithmetic: the extended
// Euclidean algorithm, modular inverses and modular exponentiation.
//
// All functions operate on arbitrary-precision integers (math/big manages
// the digit-word storage and growth), never modify their arguments and
// return freshly allocated results, so concurrent calls are safe.
package modular

import (
	"fmt"
	"math/big"
)

// ErrNoInverse is returned by Inverse when a has no multiplicative inverse
// modulo m, i.e. gcd(a, m) != 1.
type ErrNoInverse struct {
	A *big.Int
	M *big.Int
}

func (e *ErrNoInverse) Error() string {
	return fmt.Sprintf("no inverse: gcd(%s, %s) != 1", e.A, e.M)
}

// ErrNonPositiveModulus indicates a modulus that is zero or negative.
type ErrNonPositiveModulus struct {
	M *big.Int
}

func (e *ErrNonPositiveModulus) Error() string {
	return fmt.Sprintf("modulus must be positive: %s", e.M)
}

// ErrNegativeExponent indicates a negative exponent.
type ErrNegativeExponent struct {
	Exponent *big.Int
}

func (e *ErrNegativeExponent) Error() string {
	return fmt.Sprintf("exponent must be non-negative: %s", e.Exponent)
}

var one = big.NewInt(1)

// ExtendedGCD runs the iterative extended Euclidean algorithm and returns
// (g, x, y) with a*x + b*y = g = gcd(a, b).
//
// It is defined for every input pair, including zero and negative values:
// g is always non-negative, and ExtendedGCD(0, 0) is canonically (0, 0, 0).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 && b.Sign() == 0 {
		return new(big.Int), new(big.Int), new(big.Int)
	}

	// Two running triples (remainder, Bezout coefficients), advanced by the
	// quotient-subtraction recurrence until the remainder hits zero.
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), new(big.Int)
	oldT, t := new(big.Int), big.NewInt(1)

	q, tmp := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		oldR.Sub(oldR, tmp.Mul(q, r))
		oldR, r = r, oldR

		oldS.Sub(oldS, tmp.Mul(q, s))
		oldS, s = s, oldS

		oldT.Sub(oldT, tmp.Mul(q, t))
		oldT, t = t, oldT
	}

	// Truncated division can leave a negative last remainder; flip the
	// whole identity so g >= 0 always holds.
	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// GCD returns the greatest common divisor of a and b as a non-negative
// integer, using the plain Euclidean remainder loop. GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// LCM returns the least common multiple of a and b as a non-negative
// integer. LCM is 0 when either argument is 0.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	// Divide before multiplying to keep the intermediate small.
	l := new(big.Int).Quo(a, GCD(a, b))
	l.Mul(l, b)
	return l.Abs(l)
}

// Inverse returns the multiplicative inverse of a modulo m: the unique x
// in [0, m) with (a*x) mod m == 1.
//
// m must be positive. When gcd(a, m) != 1 no inverse exists and an
// ErrNoInverse is returned.
func Inverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, &ErrNonPositiveModulus{M: m}
	}

	am := new(big.Int).Mod(a, m)
	g, x, _ := ExtendedGCD(am, m)
	if g.Cmp(one) != 0 {
		return nil, &ErrNoInverse{A: a, M: m}
	}
	return x.Mod(x, m), nil
}

// Exp returns base^exponent mod modulus by repeated squaring, reducing
// after every multiplication so intermediates stay below modulus*modulus.
//
// exponent must be non-negative and modulus positive; the result is in
// [0, modulus).
func Exp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, &ErrNonPositiveModulus{M: modulus}
	}
	if exponent.Sign() < 0 {
		return nil, &ErrNegativeExponent{Exponent: exponent}
	}

	result := big.NewInt(1)
	result.Mod(result, modulus) // a modulus of 1 collapses everything to 0

	b := new(big.Int).Mod(base, modulus)
	for i, n := 0, exponent.BitLen(); i < n; i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b).Mod(result, modulus)
		}
		b.Mul(b, b).Mod(b, modulus)
	}
	return result, nil
}
