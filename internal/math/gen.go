package math

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform draws n independent values from a continuous uniform distribution over [min, max).
// With min == max every value is min.
// A nil source falls back to the global generator.
func Uniform(src rand.Source, min, max float64, n int) []float64 {
	dist := distuv.Uniform{
		Min: min,
		Max: max,
		Src: src,
	}
	xx := make([]float64, n)
	for i := 0; i < n; i++ {
		xx[i] = dist.Rand()
	}
	return xx
}
