package kmeans

import (
	"fmt"
	"math"
	"math/rand/v2"

	xmath "github.com/drakos74/k-means/internal/math"
	"github.com/rs/zerolog"
)

// Solve partitions data into the given number of clusters, running exactly epochs
// assignment and update passes.
//
// The returned clusters keep their creation order and their count always equals
// clusters, some of them possibly empty. Solve fails, without any partial result,
// on empty data, a cluster count below one, a negative epoch count, or values that
// float64 cannot represent exactly.
func Solve[T Number](data []T, clusters, epochs int, opts ...Option) ([]Cluster[T], error) {
	o := newOptions(opts...)
	logger := o.logger.With().
		Int("size", len(data)).
		Int("clusters", clusters).
		Int("epochs", epochs).
		Logger()
	cc, err := solve(data, clusters, epochs, o.source, logger)
	if err != nil {
		logger.Error().Err(err).Msg("could not cluster data")
		return nil, err
	}
	return cc, nil
}

// MustSolve is like Solve but panics on any failure.
func MustSolve[T Number](data []T, clusters, epochs int, opts ...Option) []Cluster[T] {
	cc, err := Solve(data, clusters, epochs, opts...)
	if err != nil {
		panic(fmt.Sprintf("could not cluster data: %s", err.Error()))
	}
	return cc
}

// Nearest returns the index of the cluster with the center closest to v.
// Ties go to the first cluster; it returns -1 if there are no clusters.
func Nearest[T Number](clusters []Cluster[T], v T) int {
	return closest(clusters, float64(v))
}

func solve[T Number](data []T, k, epochs int, src rand.Source, logger zerolog.Logger) ([]Cluster[T], error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrClusterCount, k)
	}
	if epochs < 0 {
		return nil, fmt.Errorf("%w: %d", ErrEpochs, epochs)
	}

	values := make([]float64, len(data))
	for i, v := range data {
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("could not convert sample at %d: %w", i, err)
		}
		values[i] = f
	}

	lo, hi := bounds(data)
	lower, upper := float64(lo), float64(hi)

	clusters := make([]Cluster[T], k)
	for i, center := range xmath.Uniform(src, lower, upper, k) {
		clusters[i] = newCluster[T](center)
	}

	logger.Debug().
		Float64("min", lower).
		Float64("max", upper).
		Msg("seeded clusters")

	for e := 0; e < epochs; e++ {
		for i := range clusters {
			clusters[i].reset()
		}
		for i, v := range data {
			clusters[closest(clusters, values[i])].add(v, values[i])
		}
		for i := range clusters {
			if err := clusters[i].update(); err != nil {
				return nil, fmt.Errorf("could not update cluster %d at epoch %d: %w", i, e, err)
			}
		}
		if event := logger.Trace(); event.Enabled() {
			centers := make([]float64, k)
			sizes := make([]int, k)
			for i, c := range clusters {
				centers[i] = c.center
				sizes[i] = c.Len()
			}
			event.Int("epoch", e).
				Floats64("centers", centers).
				Ints("sizes", sizes).
				Msg("epoch done")
		}
	}

	return clusters, nil
}

// closest scans the clusters in order, so an exact tie keeps the first one.
func closest[T Number](clusters []Cluster[T], f float64) int {
	idx := -1
	d := math.Inf(1)
	for i := range clusters {
		if dd := math.Abs(clusters[i].center - f); idx < 0 || dd < d {
			idx = i
			d = dd
		}
	}
	return idx
}
