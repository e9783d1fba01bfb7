package kmeans

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point sample type.
type Number interface {
	constraints.Integer | constraints.Float
}

// maxExact bounds the integer magnitudes accepted as samples and sums.
// Below it every integer, and every sum of two of them, is exact in float64.
const maxExact = 1 << 53

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// toFloat converts a sample into the accumulator precision.
func toFloat[T Number](v T) (float64, error) {
	f := float64(v)
	if err := representable[T](f); err != nil {
		return 0, fmt.Errorf("%w: sample %v: %w", ErrConversion, v, err)
	}
	return f, nil
}

// representable checks that f stands for a value of T without precision loss.
func representable[T Number](f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%v is not finite", f)
	}
	if !isFloat[T]() && (f >= maxExact || f <= -maxExact) {
		return fmt.Errorf("%v is outside the exact integer range of float64", f)
	}
	return nil
}

// bounds returns the smallest and largest samples.
// Incomparable pairs count as equal, so the running extremum is kept.
func bounds[T Number](data []T) (T, T) {
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
