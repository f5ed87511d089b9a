package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilMap is returned when BFS is given a nil map.
	ErrNilMap = errors.New("bfs: nil map")

	// ErrOptionViolation wraps the first invalid Option seen by BFS.
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrNoPath is returned by PathTo for a cell the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes one BFS call. Invalid arguments do not panic; the first one
// is reported by BFS as ErrOptionViolation.
type Option func(*Options)

// Options holds the walk limits and hooks. Every hook receives a cell index
// and its hop count from the start cell.
type Options struct {
	// Ctx is polled once per dequeued cell and again before its exits fan out.
	Ctx context.Context

	// OnEnqueue fires when a cell is first discovered, at its final hop count.
	OnEnqueue func(cell, hops int)

	// OnDequeue fires when a cell leaves the queue, just before OnVisit.
	OnDequeue func(cell, hops int)

	// OnVisit fires once per reached cell in Order sequence. A non-nil
	// error stops the walk and is returned wrapped.
	OnVisit func(cell, hops int) error

	// MaxHops caps discovery: cells further than MaxHops from the start are
	// never enqueued. 0 means unbounded.
	MaxHops int

	// FilterNeighbor vetoes the exit from→to when it returns false,
	// e.g. to route around cells occupied by other units.
	FilterNeighbor func(from, to int) bool

	err error
}

// DefaultOptions: background context, no hop cap, every exit allowed,
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext cancels the walk with ctx. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets the discovery hook.
func WithOnEnqueue(fn func(cell, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets the dequeue hook.
func WithOnDequeue(fn func(cell, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets the visit hook; its error aborts the walk.
func WithOnVisit(fn func(cell, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth caps the walk at d hops from the start, inclusive.
// d == 0 removes the cap; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: max depth %d < 0", ErrOptionViolation, d)
			}
			return
		}
		o.MaxHops = d
	}
}

// WithFilterNeighbor installs an exit veto.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the walk's spanning tree over the reached cells.
type Result struct {
	Start  int
	Order  []int       // reached cells, nondecreasing in hops
	Depth  map[int]int // cell → hops from Start
	Parent map[int]int // cell → predecessor; Start has no entry
}

// PathTo returns the fewest-hop route Start→dest, both ends included.
func (r *Result) PathTo(dest int) ([]int, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, hops+1)
	for i, cur := hops, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
