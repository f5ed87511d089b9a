package flowcache

import (
	"errors"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvnav/dijkstra"
)

var (
	// ErrBadBurst indicates WithRate received a burst below 1.
	ErrBadBurst = errors.New("flowcache: burst must be at least 1")

	// ErrBadDirtyDistance indicates WithDirtyDistance received d < 1.
	ErrBadDirtyDistance = errors.New("flowcache: dirty distance must be at least 1")

	// ErrNilMap indicates Update was called with a nil map.
	ErrNilMap = errors.New("flowcache: map is nil")
)

// Options configures a Cache.
//
// Limit, Burst  – token bucket gating rebuilds after the first one.
// DirtyDistance – Manhattan distance (in cells) a source must move before
// the field is considered stale. 1 means any move.
// FieldOptions  – passed through to dijkstra.NewEmpty.
type Options struct {
	Limit         rate.Limit
	Burst         int
	DirtyDistance int
	FieldOptions  []dijkstra.Option
	Logger        *slog.Logger
}

// Option represents a functional option for configuring a Cache.
type Option func(*Options)

// WithRate throttles rebuilds to limit per second with the given burst.
// Panics if burst < 1.
func WithRate(limit rate.Limit, burst int) Option {
	return func(o *Options) {
		if burst < 1 {
			panic(ErrBadBurst.Error())
		}
		o.Limit = limit
		o.Burst = burst
	}
}

// WithDirtyDistance sets how far a source must move to trigger a rebuild.
// Panics if d < 1.
func WithDirtyDistance(d int) Option {
	return func(o *Options) {
		if d < 1 {
			panic(ErrBadDirtyDistance.Error())
		}
		o.DirtyDistance = d
	}
}

// WithFieldOptions forwards options to the underlying distance field.
func WithFieldOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.FieldOptions = append(o.FieldOptions, opts...)
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

var discard = slog.New(slog.DiscardHandler)

// DefaultOptions returns an unthrottled configuration that rebuilds on any
// source move.
func DefaultOptions() Options {
	return Options{
		Limit:         rate.Inf,
		Burst:         1,
		DirtyDistance: 1,
		Logger:        discard,
	}
}
