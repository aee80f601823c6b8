package numgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/numgo/intset"
	"github.com/hupe1980/numgo/modular"
)

var (
	// ErrInvalidArgument is returned when an argument lies outside the
	// domain of the operation, e.g. a non-positive modulus or a negative
	// exponent.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoInverse is returned when a modular inverse does not exist
	// because the operand and the modulus share a common factor.
	ErrNoInverse = errors.New("no modular inverse exists")
)

// translateError folds subpackage errors into the two root sentinels, so
// callers can branch with errors.Is while errors.As still reaches the
// typed error underneath.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ni *modular.ErrNoInverse
	if errors.As(err, &ni) {
		return fmt.Errorf("%w: %w", ErrNoInverse, err)
	}

	// Domain violations.
	var nm *modular.ErrNonPositiveModulus
	if errors.As(err, &nm) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	var ne *modular.ErrNegativeExponent
	if errors.As(err, &ne) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	var nidx *intset.ErrNegativeIndex
	if errors.As(err, &nidx) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
