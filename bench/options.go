package bench

import (
	"math/rand"

	"github.com/karinahu/homework1-record/logger"
	"github.com/karinahu/homework1-record/metrics"
)

type options struct {
	sizes     []int
	generator Generator
	rand      *rand.Rand
	valueMin  int
	valueMax  int
	targetMin int
	targetMax int
	collector metrics.Collector
	logger    *logger.Logger
}

// Option configures a Harness.
type Option func(*options)

// WithSizes sets the list lengths to benchmark. They are run in increasing
// order regardless of the order given.
func WithSizes(sizes ...int) Option {
	return func(o *options) {
		o.sizes = sizes
	}
}

// WithGenerator replaces the default random list generator.
// WithValueRange has no effect once a generator is set.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithValueRange sets the closed range list values are drawn from.
func WithValueRange(lo, hi int) Option {
	return func(o *options) {
		o.valueMin, o.valueMax = lo, hi
	}
}

// WithTargetRange sets the closed range search targets are drawn from.
func WithTargetRange(lo, hi int) Option {
	return func(o *options) {
		o.targetMin, o.targetMax = lo, hi
	}
}

// WithRand sets the random source for targets and the default generator.
// Pass a seeded source for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithSeed is shorthand for WithRand with a source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed))) // nolint gosec
}

// WithCollector reports every timed search to c.
//
// If nil is passed, timings are not collected.
func WithCollector(c metrics.Collector) Option {
	return func(o *options) {
		if c == nil {
			c = metrics.Noop{}
		}
		o.collector = c
	}
}

// WithLogger sets the logger for per-size and per-run events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logger.NoopLogger()
		}
		o.logger = l
	}
}
