// Package metrics collects the durations measured by the benchmark harness.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Algorithm labels reported by the harness.
const (
	Linear = "linear"
	Binary = "binary"
)

// Collector receives one call per timed search.
// algorithm is one of Linear or Binary, length is the searched list length.
type Collector interface {
	RecordSearch(algorithm string, length int, d time.Duration)
}

// Noop is a Collector that drops everything.
type Noop struct{}

func (Noop) RecordSearch(string, int, time.Duration) {}

// Basic keeps per-algorithm counts and total durations in memory.
// The zero value is ready to use and safe for concurrent use.
type Basic struct {
	mu    sync.Mutex
	stats map[string]*counters
}

type counters struct {
	count      atomic.Int64
	totalNanos atomic.Int64
	maxLength  atomic.Int64
}

// RecordSearch implements Collector.
func (b *Basic) RecordSearch(algorithm string, length int, d time.Duration) {
	c := b.counters(algorithm)
	c.count.Add(1)
	c.totalNanos.Add(d.Nanoseconds())
	for {
		cur := c.maxLength.Load()
		if int64(length) <= cur || c.maxLength.CompareAndSwap(cur, int64(length)) {
			break
		}
	}
}

func (b *Basic) counters(algorithm string) *counters {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stats == nil {
		b.stats = make(map[string]*counters)
	}
	c, ok := b.stats[algorithm]
	if !ok {
		c = &counters{}
		b.stats[algorithm] = c
	}
	return c
}

// Stats is a snapshot of one algorithm's counters.
type Stats struct {
	Count     int64
	Total     time.Duration
	Avg       time.Duration
	MaxLength int
}

// Stats returns a snapshot of the counters for algorithm.
func (b *Basic) Stats(algorithm string) Stats {
	c := b.counters(algorithm)
	s := Stats{
		Count:     c.count.Load(),
		Total:     time.Duration(c.totalNanos.Load()),
		MaxLength: int(c.maxLength.Load()),
	}
	if s.Count > 0 {
		s.Avg = s.Total / time.Duration(s.Count)
	}
	return s
}
