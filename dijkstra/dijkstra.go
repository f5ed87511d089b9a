package dijkstra

import (
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvnav/core"
)

// DistanceField holds, for every cell of a width×height map, the cheapest
// known cost to reach any source, or Unreachable.
//
// The field keeps its frontier and visited guard between builds so repeated
// per-frame rebuilds do not allocate. A DistanceField is not safe for
// concurrent use.
type DistanceField struct {
	width, height int
	maxDepth      float64
	values        []float64
	options       Options

	frontier []frontierEntry
	guard    *bitset.BitSet
}

// maxCells keeps width*height and the 16-byte frontier capacity derived
// from it inside int.
const maxCells = math.MaxInt / 16

// frontierEntry is one pending (cell, depth) pair on the flood stack.
type frontierEntry struct {
	cell  int
	depth float64
}

// New allocates a width×height field and builds it from sources over m.
//
// Cells whose cost exceeds maxDepth stay Unreachable; every source gets 0.
// Returns ErrBadDimensions, ErrBadMaxDepth, ErrNilMap, core.ErrIndexOutOfRange
// or core.ErrInvalidCost on invalid input.
func New(width, height int, sources []int, m core.BaseMap, maxDepth float64, opts ...Option) (*DistanceField, error) {
	f, err := NewEmpty(width, height, maxDepth, opts...)
	if err != nil {
		return nil, err
	}
	if err = f.Build(sources, m); err != nil {
		return nil, err
	}

	return f, nil
}

// NewEmpty allocates a width×height field with every cell Unreachable.
func NewEmpty(width, height int, maxDepth float64, opts ...Option) (*DistanceField, error) {
	// 1) Validate dimensions and depth bound
	if width <= 0 || height <= 0 || width > maxCells/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if math.IsNaN(maxDepth) || math.IsInf(maxDepth, 0) || maxDepth < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadMaxDepth, maxDepth)
	}

	// 2) Apply options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Allocate the field and its scratch buffers
	n := width * height
	f := &DistanceField{
		width:    width,
		height:   height,
		maxDepth: maxDepth,
		values:   make([]float64, n),
		options:  cfg,
		frontier: make([]frontierEntry, 0, n),
		guard:    bitset.New(uint(n)),
	}
	f.Clear()

	return f, nil
}

// FromValues wraps a copy of values as a field, e.g. after decoding a snapshot.
// Returns ErrSizeMismatch if len(values) != width*height and ErrBadValue for
// NaN or negative entries.
func FromValues(width, height int, maxDepth float64, values []float64, opts ...Option) (*DistanceField, error) {
	f, err := NewEmpty(width, height, maxDepth, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) != len(f.values) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(values), len(f.values))
	}
	for i, v := range values {
		if math.IsNaN(v) || v < 0 {
			return nil, fmt.Errorf("%w: cell %d is %v", ErrBadValue, i, v)
		}
	}
	copy(f.values, values)

	return f, nil
}

// Build floods the field from every source over m. Values only ever decrease;
// call Clear first to start from scratch.
//
// With more sources than Workers, Build snapshots m's adjacency and floods
// chunks of sources in parallel (see buildParallel). Otherwise it runs the
// sequential flood directly on the field.
//
// On error the field keeps whatever values were already lowered.
func (f *DistanceField) Build(sources []int, m core.BaseMap) error {
	began := time.Now()
	parallel := len(sources) > f.options.Workers
	err := f.build(sources, m, parallel)
	f.options.Metrics.RecordBuild(time.Since(began), len(sources), parallel, err)

	return err
}

func (f *DistanceField) build(sources []int, m core.BaseMap, parallel bool) error {
	if m == nil {
		return ErrNilMap
	}
	n := len(f.values)
	for _, src := range sources {
		if err := core.CheckIndex(src, n); err != nil {
			return fmt.Errorf("source: %w", err)
		}
	}
	if parallel {
		return f.buildParallel(sources, m)
	}

	var err error
	for _, src := range sources {
		f.guard.ClearAll()
		f.frontier, err = flood(f.values, src, m, f.maxDepth, f.frontier, f.guard)
		if err != nil {
			return err
		}
	}

	return nil
}

// flood runs one source's pass over values.
//
// The frontier is a stack and a cell is marked in guard the moment it is
// pushed, so each cell is pushed at most once per source. A pop lowers the
// cell only if its recorded value is strictly greater than the popped depth.
// The result is an upper bound on the true cost, exact on tree-shaped maps
// but possibly higher elsewhere when a long route is pushed first.
//
// The frontier is returned so the caller can keep its grown capacity.
func flood(values []float64, src int, m core.BaseMap, maxDepth float64, frontier []frontierEntry, guard *bitset.BitSet) ([]frontierEntry, error) {
	n := len(values)
	frontier = append(frontier[:0], frontierEntry{cell: src})
	for len(frontier) > 0 {
		top := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if values[top.cell] <= top.depth {
			continue
		}
		values[top.cell] = top.depth

		for _, e := range m.Exits(top.cell) {
			if err := core.CheckCost(e.Cost); err != nil {
				return frontier[:0], fmt.Errorf("exit %d→%d: %w", top.cell, e.To, err)
			}
			if err := core.CheckIndex(e.To, n); err != nil {
				return frontier[:0], fmt.Errorf("exit %d→%d: %w", top.cell, e.To, err)
			}
			depth := top.depth + e.Cost
			if depth > maxDepth || guard.Test(uint(e.To)) {
				continue
			}
			guard.Set(uint(e.To))
			frontier = append(frontier, frontierEntry{cell: e.To, depth: depth})
		}
	}

	return frontier, nil
}

// Clear resets every cell to Unreachable.
func (f *DistanceField) Clear() {
	for i := range f.values {
		f.values[i] = Unreachable
	}
}

// Width returns the field width in cells.
func (f *DistanceField) Width() int { return f.width }

// Height returns the field height in cells.
func (f *DistanceField) Height() int { return f.height }

// MaxDepth returns the cost cutoff used by Build.
func (f *DistanceField) MaxDepth() float64 { return f.maxDepth }

// Len returns width*height.
func (f *DistanceField) Len() int { return len(f.values) }

// Values returns the live backing slice, indexed by cell.
// Writes through it change the field.
func (f *DistanceField) Values() []float64 { return f.values }

// Value returns the recorded cost of idx. ok is false when idx is out of
// range or Unreachable.
func (f *DistanceField) Value(idx int) (v float64, ok bool) {
	if idx < 0 || idx >= len(f.values) {
		return Unreachable, false
	}
	v = f.values[idx]

	return v, v != Unreachable
}

// Reachable returns the set of cells with a recorded cost.
func (f *DistanceField) Reachable() *roaring.Bitmap {
	set := roaring.New()
	for i, v := range f.values {
		if v != Unreachable {
			set.Add(uint32(i))
		}
	}

	return set
}
