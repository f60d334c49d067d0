// Package bench times linear search against binary search over random lists
// of increasing length.
//
// For every configured length the harness generates a list and a target,
// times lsearch.Search over the list as generated, then times bsearch.Search
// over a sorted copy. Sorting happens outside the timed region: only the
// search calls themselves are measured. The target is drawn from a narrower
// range than the list values, so it may or may not be present.
//
// Randomness comes from an injectable *rand.Rand. Without WithRand the source
// is seeded from the clock and runs are not reproducible.
package bench

import (
	"context"
	"math/rand"
	"slices"
	"time"

	"github.com/karinahu/homework1-record/bsearch"
	"github.com/karinahu/homework1-record/logger"
	"github.com/karinahu/homework1-record/lsearch"
	"github.com/karinahu/homework1-record/metrics"
)

// Defaults used when no option overrides them.
const (
	DefaultValueMin  = 0
	DefaultValueMax  = 100000
	DefaultTargetMin = 0
	DefaultTargetMax = 10000
)

// DefaultSizes is the list length schedule of a default run.
var DefaultSizes = []int{1, 10, 100, 1000, 10000, 100000, 1000000}

// Generator returns a list of length n.
// Behavior for negative n is up to the generator; RandomList panics.
type Generator func(n int) []int

// RandomList returns a Generator drawing values uniformly from [lo, hi].
func RandomList(r *rand.Rand, lo, hi int) Generator {
	return func(n int) []int {
		list := make([]int, n)
		for i := range list {
			list[i] = lo + r.Intn(hi-lo+1)
		}
		return list
	}
}

// Harness runs the linear vs. binary search comparison.
// It is not safe for concurrent use.
type Harness struct {
	sizes     []int
	generator Generator
	rand      *rand.Rand
	targetMin int
	targetMax int
	collector metrics.Collector
	logger    *logger.Logger
}

// New creates a Harness configured by opts.
func New(opts ...Option) *Harness {
	o := options{
		sizes:     DefaultSizes,
		valueMin:  DefaultValueMin,
		valueMax:  DefaultValueMax,
		targetMin: DefaultTargetMin,
		targetMax: DefaultTargetMax,
		collector: metrics.Noop{},
		logger:    logger.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
	}
	if o.generator == nil {
		o.generator = RandomList(o.rand, o.valueMin, o.valueMax)
	}

	sizes := slices.Clone(o.sizes)
	slices.Sort(sizes)

	return &Harness{
		sizes:     sizes,
		generator: o.generator,
		rand:      o.rand,
		targetMin: o.targetMin,
		targetMax: o.targetMax,
		collector: o.collector,
		logger:    o.logger,
	}
}

// Sizes returns the list lengths Run iterates over, in increasing order.
func (h *Harness) Sizes() []int {
	return slices.Clone(h.sizes)
}

// TimeSearchAlgorithms generates one list of length n and one target and
// returns the time each search took on it.
func (h *Harness) TimeSearchAlgorithms(n int) Record {
	list := h.generator(n)
	target := h.targetMin + h.rand.Intn(h.targetMax-h.targetMin+1)

	rec := Record{Length: n}

	start := time.Now()
	_, _ = lsearch.Search(list, target)
	rec.Linear = time.Since(start)

	sorted := slices.Clone(list)
	slices.Sort(sorted)

	start = time.Now()
	_, _ = bsearch.Search(sorted, target)
	rec.Binary = time.Since(start)

	h.collector.RecordSearch(metrics.Linear, n, rec.Linear)
	h.collector.RecordSearch(metrics.Binary, n, rec.Binary)
	return rec
}

// Run times both searches for every configured size in increasing order and
// hands each record to r as soon as it is measured.
func (h *Harness) Run(r Reporter) ([]Record, error) {
	ctx := context.Background()
	start := time.Now()

	records := make([]Record, 0, len(h.sizes))
	for _, n := range h.sizes {
		rec := h.TimeSearchAlgorithms(n)
		h.logger.LogRecord(ctx, rec.Length, rec.Linear, rec.Binary)
		if err := r.Report(rec); err != nil {
			h.logger.LogRun(ctx, len(records), time.Since(start), err)
			return records, err
		}
		records = append(records, rec)
	}

	h.logger.LogRun(ctx, len(records), time.Since(start), nil)
	return records, nil
}
