package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a width, height or count below a constructor's minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOutOfBounds indicates a rectangle or point outside the canvas.
var ErrOutOfBounds = errors.New("builder: coordinates out of bounds")

// wrapf prefixes err with the constructor name, keeping the sentinel for errors.Is.
func wrapf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
