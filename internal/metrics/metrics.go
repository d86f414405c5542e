// Package metrics exposes trainer counters and histograms for Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the trainer metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	moves       prometheus.Counter
	solves      *prometheus.CounterVec
	execution   *prometheus.HistogramVec
	recognition *prometheus.HistogramVec
	storeErrors prometheus.Counter
	connected   prometheus.Gauge
}

// solveBuckets span 0.25s to about 64s.
var solveBuckets = prometheus.ExponentialBuckets(0.25, 2, 9)

// New creates a Recorder with every metric registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cubetrainer_moves_total",
			Help: "Moves received from the device",
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cubetrainer_solves_total",
			Help: "Completed cases by alg set",
		}, []string{"set"}),
		execution: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cubetrainer_execution_seconds",
			Help:    "Time from first to last move of a case",
			Buckets: solveBuckets,
		}, []string{"set"}),
		recognition: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cubetrainer_recognition_seconds",
			Help:    "Time from case shown to first move",
			Buckets: solveBuckets,
		}, []string{"set"}),
		storeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cubetrainer_stat_store_errors_total",
			Help: "Solve statistics that could not be persisted",
		}),
		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cubetrainer_device_connected",
			Help: "1 while a cube is connected",
		}),
	}
	r.registry.MustRegister(r.moves, r.solves, r.execution, r.recognition, r.storeErrors, r.connected)
	return r
}

// Registry returns the registry the metrics live on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// MoveReceived counts one device move.
func (r *Recorder) MoveReceived() {
	r.moves.Inc()
}

// SolveRecorded counts a completed case and observes its timings.
func (r *Recorder) SolveRecorded(set string, execution, recognition time.Duration) {
	r.solves.WithLabelValues(set).Inc()
	r.execution.WithLabelValues(set).Observe(execution.Seconds())
	r.recognition.WithLabelValues(set).Observe(recognition.Seconds())
}

// StoreFailed counts a statistics write that failed.
func (r *Recorder) StoreFailed() {
	r.storeErrors.Inc()
}

// SetConnected records device connection state.
func (r *Recorder) SetConnected(connected bool) {
	if connected {
		r.connected.Set(1)
	} else {
		r.connected.Set(0)
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
