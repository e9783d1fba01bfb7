package kmeans

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	source rand.Source
	logger zerolog.Logger
}

// Option configures a single Solve call.
type Option func(*options)

// WithSource sets the random source used to seed the centers.
// A nil source keeps the default one.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithSeed seeds the centers from a PCG source with the given seed,
// making the whole run reproducible.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed))
}

// WithLogger sets the logger for the solve diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts ...Option) options {
	o := options{
		source: rand.NewPCG(rand.Uint64(), rand.Uint64()),
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
