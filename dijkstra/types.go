// Package dijkstra defines core types and configuration options
// for the multi-source distance-field builder.
package dijkstra

import (
	"errors"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/lvnav/metrics"
)

// Unreachable marks a cell no source reached within MaxDepth.
const Unreachable = math.MaxFloat64

// Sentinel errors returned by the distance-field builder.
var (
	// ErrNilMap indicates that a nil core.BaseMap was passed to Build or a flow query.
	ErrNilMap = errors.New("dijkstra: map is nil")

	// ErrBadDimensions indicates width or height is not positive, or that
	// width*height is too large to index.
	ErrBadDimensions = errors.New("dijkstra: bad width or height")

	// ErrBadMaxDepth indicates maxDepth is NaN, infinite or negative.
	ErrBadMaxDepth = errors.New("dijkstra: maxDepth must be finite and non-negative")

	// ErrSizeMismatch indicates FromValues received a slice of the wrong length.
	ErrSizeMismatch = errors.New("dijkstra: values length must equal width*height")

	// ErrBadValue indicates FromValues received a NaN or negative cell value.
	ErrBadValue = errors.New("dijkstra: cell values must be non-negative and not NaN")

	// ErrBadWorkers indicates WithWorkers received n <= 0.
	ErrBadWorkers = errors.New("dijkstra: Workers must be positive")
)

// Options configures a DistanceField.
//
// Workers – parallel worker count; Build goes parallel when len(sources) > Workers.
//
//	Must be > 0. Default is runtime.GOMAXPROCS(0).
//
// Logger  – structured logger for parallel fan-out.
// Metrics – receives one RecordBuild call per Build.
type Options struct {
	Workers int
	Logger  *slog.Logger
	Metrics metrics.Recorder
}

// Option represents a functional option for configuring a DistanceField.
type Option func(*Options)

// WithWorkers sets the worker count used by the parallel builder.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discard
		}
		o.Logger = l
	}
}

// WithMetrics sets the metrics recorder. A nil recorder disables recording.
func WithMetrics(r metrics.Recorder) Option {
	return func(o *Options) {
		if r == nil {
			r = metrics.Noop{}
		}
		o.Metrics = r
	}
}

var discard = slog.New(slog.DiscardHandler)

// DefaultOptions returns an Options struct initialized with:
//   - Workers: runtime.GOMAXPROCS(0).
//   - Logger:  discarding logger.
//   - Metrics: metrics.Noop.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  discard,
		Metrics: metrics.Noop{},
	}
}
