// Package metrics counts placeholder transitions with Prometheus collectors.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/viewstate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Recorder implements viewstate.Observer.
type Recorder struct {
	requestsTotal    *prometheus.CounterVec
	transitionsTotal *prometheus.CounterVec
	completionsTotal *prometheus.CounterVec
	requestDelay     *prometheus.HistogramVec
}

// NewRecorder registers the collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constant.App,
				Name:      "transition_requests_total",
				Help:      "Transition requests by target",
			},
			[]string{"target"},
		),
		transitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constant.App,
				Name:      "transitions_applied_total",
				Help:      "Applied transitions by source and target state",
			},
			[]string{"from", "to"},
		),
		completionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constant.App,
				Name:      "transition_completions_total",
				Help:      "Completed requests by target and result",
			},
			[]string{"target", "result"},
		),
		requestDelay: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: constant.App,
				Name:      "transition_delay_seconds",
				Help:      "Debounce delay applied to transition requests",
				Buckets:   []float64{0, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"target"},
		),
	}
}

func (r *Recorder) Requested(target viewstate.Identity, delay time.Duration) {
	r.requestsTotal.WithLabelValues(target.String()).Inc()
	r.requestDelay.WithLabelValues(target.String()).Observe(delay.Seconds())
}

func (r *Recorder) Applied(from, to viewstate.Identity) {
	r.transitionsTotal.WithLabelValues(from.String(), to.String()).Inc()
}

func (r *Recorder) Finished(target viewstate.Identity, result viewstate.Result) {
	r.completionsTotal.WithLabelValues(target.String(), result.String()).Inc()
}

// Write prints every metric gathered by g in the Prometheus text format.
func Write(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
