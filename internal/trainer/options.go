package trainer

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SeamusWaldron/cubetrainer/internal/logging"
	"github.com/SeamusWaldron/cubetrainer/internal/metrics"
)

// Option configures a Machine.
type Option func(*options)

type options struct {
	rnd     Rand
	store   StatsStore
	metrics *metrics.Recorder
	logger  *slog.Logger
}

func defaultOptions() *options {
	seed := uint64(time.Now().UnixNano())
	return &options{
		rnd:    rand.New(rand.NewPCG(seed, seed>>1)),
		logger: logging.New("trainer"),
	}
}

// WithRand replaces the random source. Tests pass a fixed sequence.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rnd = r
	}
}

// WithStatsStore persists every recorded solve.
func WithStatsStore(s StatsStore) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithMetrics records moves, solves and connection state.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *options) {
		o.metrics = r
	}
}

// WithLogger sets the logger. Defaults to the "trainer" component logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
