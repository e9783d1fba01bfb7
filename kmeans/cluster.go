package kmeans

import (
	"fmt"

	"github.com/drakos74/k-means/internal/buffer"
	xmath "github.com/drakos74/k-means/internal/math"
)

// Cluster is a group of samples and the center they were assigned to.
type Cluster[T Number] struct {
	center  float64
	members []T
	stats   buffer.Stats
}

func newCluster[T Number](center float64) Cluster[T] {
	return Cluster[T]{
		center:  center,
		members: make([]T, 0),
		stats:   *buffer.NewStats(),
	}
}

// Center returns the current center of the cluster.
func (c Cluster[T]) Center() float64 {
	return c.center
}

// Members returns a copy of the samples assigned in the last epoch, in input order.
func (c Cluster[T]) Members() []T {
	mm := make([]T, len(c.members))
	copy(mm, c.members)
	return mm
}

// Len returns the number of members.
func (c Cluster[T]) Len() int {
	return len(c.members)
}

// Stats summarises the members of a cluster.
type Stats struct {
	Size  int
	Avg   float64
	Min   float64
	Max   float64
	StDev float64
}

// Stats returns the summary of the current members.
func (c Cluster[T]) Stats() Stats {
	return Stats{
		Size:  c.stats.Count(),
		Avg:   c.stats.Avg(),
		Min:   c.stats.Min(),
		Max:   c.stats.Max(),
		StDev: c.stats.StDev(),
	}
}

func (c Cluster[T]) String() string {
	return fmt.Sprintf("{center: %s, members: %v}", xmath.Format(c.center), c.members)
}

func (c *Cluster[T]) add(v T, f float64) {
	c.members = append(c.members, v)
	c.stats.Push(f)
}

func (c *Cluster[T]) reset() {
	c.members = c.members[:0]
	c.stats.Reset()
}

// update moves the center to the mean of the members.
// An empty cluster keeps its center.
func (c *Cluster[T]) update() error {
	if len(c.members) == 0 {
		return nil
	}
	if !isFloat[T]() {
		// every partial sum must stay exact, not only the final one
		var sum float64
		for i, m := range c.members {
			sum += float64(m)
			if err := representable[T](sum); err != nil {
				return fmt.Errorf("%w: sum of the first %d members: %w", ErrConversion, i+1, err)
			}
		}
	}
	if err := representable[T](c.stats.Sum()); err != nil {
		return fmt.Errorf("%w: sum of %d members: %w", ErrConversion, len(c.members), err)
	}
	c.center = c.stats.Avg()
	return nil
}
