package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Prometheus is a Collector backed by Prometheus metric vectors.
type Prometheus struct {
	duration *prometheus.HistogramVec
	searches *prometheus.CounterVec
}

// NewPrometheus creates the searchbench metrics and registers them on reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "searchbench",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of a single timed search call.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 9),
		}, []string{"algorithm"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "searchbench",
			Name:      "searches_total",
			Help:      "Number of timed search calls.",
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{p.duration, p.searches} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return p, nil
}

// RecordSearch implements Collector.
func (p *Prometheus) RecordSearch(algorithm string, _ int, d time.Duration) {
	p.duration.WithLabelValues(algorithm).Observe(d.Seconds())
	p.searches.WithLabelValues(algorithm).Inc()
}

// WriteText gathers g and writes every metric family to w in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
