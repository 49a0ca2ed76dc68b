// Package metrics counts command outcomes and durations with Prometheus collectors.
package metrics

import (
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "cadence"

var _ ports.Timeline = (*Recorder)(nil)

// Recorder implements ports.Timeline by feeding a private Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge

	mu      sync.Mutex
	started map[string]started
}

type started struct {
	name string
	at   time.Time
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		commands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Number of finished command spans by name and outcome.",
			},
			[]string{"command", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Wall-clock time from command start to its outcome.",
				Buckets:   []float64{0.001, 0.005, 0.016, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"command"},
		),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "commands_in_flight",
			Help:      "Command spans started and not yet finished.",
		}),
		started: make(map[string]started),
	}
}

// OnCommandStart implements ports.Timeline.
func (r *Recorder) OnCommandStart(spanID, _, name string, start time.Time) {
	r.mu.Lock()
	r.started[spanID] = started{name: name, at: start}
	r.mu.Unlock()

	r.inFlight.Inc()
}

// OnCommandEnd implements ports.Timeline.
func (r *Recorder) OnCommandEnd(spanID string, end time.Time, outcome string, err error) {
	r.mu.Lock()
	s, ok := r.started[spanID]
	delete(r.started, spanID)
	r.mu.Unlock()
	if !ok {
		return
	}

	if outcome == "" {
		outcome = "completed"
		if err != nil {
			outcome = "failed"
		}
	}

	r.inFlight.Dec()
	r.commands.WithLabelValues(s.name, outcome).Inc()
	r.duration.WithLabelValues(s.name).Observe(end.Sub(s.at).Seconds())
}

// Registry returns the registry the collectors are registered with.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every collected family in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return zerr.Wrap(err, "failed to write metrics")
		}
	}
	return nil
}
