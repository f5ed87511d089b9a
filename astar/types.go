package astar

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/lvnav/metrics"
)

// DefaultMaxSteps is the expansion budget of a search unless WithMaxSteps overrides it.
const DefaultMaxSteps = 2048

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilMap indicates that a nil core.BaseMap was passed to Search.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrInvalidHeuristic indicates PathingDistance returned NaN, ±Inf or a negative value.
	ErrInvalidHeuristic = errors.New("astar: heuristic must be finite and non-negative")

	// ErrBrokenPath indicates the recorded parent chain does not lead back to start.
	// It can only happen on maps with zero-cost cycles.
	ErrBrokenPath = errors.New("astar: parent chain does not reach start")

	// ErrBadMaxSteps indicates WithMaxSteps received n <= 0.
	ErrBadMaxSteps = errors.New("astar: MaxSteps must be positive")
)

// NavigationPath is the outcome of a single search.
//
// On success Steps runs from start to Destination inclusive.
// On failure Success is false and Steps is nil.
type NavigationPath struct {
	Destination int
	Success     bool
	Steps       []int
}

// Len returns the number of cells on the path, 0 on failure.
func (p NavigationPath) Len() int { return len(p.Steps) }

// Options configures a search.
//
// MaxSteps – maximum number of node expansions before giving up (> 0).
// Logger   – structured logger for budget exhaustion and broken chains.
// Metrics  – receives one RecordSearch call per search.
type Options struct {
	MaxSteps int
	Logger   *slog.Logger
	Metrics  metrics.Recorder
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxSteps caps the number of expansions. Panics if n <= 0.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
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

// DefaultOptions returns the defaults:
//   - MaxSteps: DefaultMaxSteps (2048).
//   - Logger:   discarding logger.
//   - Metrics:  metrics.Noop.
func DefaultOptions() Options {
	return Options{
		MaxSteps: DefaultMaxSteps,
		Logger:   discard,
		Metrics:  metrics.Noop{},
	}
}
