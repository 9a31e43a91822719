// Package metrics exposes Prometheus collectors for the SSH server: active
// sessions, finished runs by outcome, simulated frames and engine events.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/paintball-slug/internal/engine"
)

const namespace = "slug"

// Recorder owns a private registry so tests and multiple servers never
// collide on the global one.
type Recorder struct {
	registry *prometheus.Registry

	sessions prometheus.Gauge
	runs     *prometheus.CounterVec
	frames   prometheus.Counter
	events   *prometheus.CounterVec
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of connected play sessions.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by outcome.",
		}, []string{"outcome"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Simulation frames stepped across all sessions.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Engine events by kind.",
		}, []string{"kind"}),
	}
	r.registry.MustRegister(r.sessions, r.runs, r.frames, r.events)
	return r
}

// SessionStarted increments the active session gauge.
func (r *Recorder) SessionStarted() {
	if r == nil {
		return
	}
	r.sessions.Inc()
}

// SessionEnded decrements the active session gauge.
func (r *Recorder) SessionEnded() {
	if r == nil {
		return
	}
	r.sessions.Dec()
}

// RunFinished counts a run with the given outcome.
func (r *Recorder) RunFinished(outcome string) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(outcome).Inc()
}

// Frame counts one simulation step.
func (r *Recorder) Frame() {
	if r == nil {
		return
	}
	r.frames.Inc()
}

// Sink returns an engine event sink that counts events by kind.
func (r *Recorder) Sink() engine.EventSink {
	return engine.EventSinkFunc(func(ev engine.Event) {
		if r == nil {
			return
		}
		r.events.WithLabelValues(string(ev.Kind)).Inc()
	})
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
