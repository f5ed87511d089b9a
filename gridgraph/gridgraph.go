// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a navigation map for the lvnav engines. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Per-cell movement costs (entering a cell costs its value)
//   - A configurable heuristic metric for A*
//   - Identification of connected components of walkable cells
//
// Cells with value < PassableThreshold are walls; all others are walkable.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/geometry"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeValue if a walkable cell has a negative value,
// ErrBadDiagonalCost for an unusable diagonal multiplier under Conn8.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.Conn == Conn8 {
		d := opts.DiagonalCost
		if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			return nil, ErrBadDiagonalCost
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.PassableThreshold && v < 0 {
				return nil, ErrNegativeValue
			}
		}
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	gg := &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		Metric:            opts.Metric,
		DiagonalCost:      opts.DiagonalCost,
		CornerCutting:     opts.CornerCutting,
		neighborOffsets:   offsets,
	}

	return gg, nil
}

// From2D builds a GridGraph with default options for the given connectivity.
// Conn8 grids use the Chebyshev heuristic, Conn4 grids use Manhattan.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	if conn == Conn8 {
		opts.Metric = geometry.Chebyshev
	}

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Point converts a row-major index to a geometry.Point.
func (gg *GridGraph) Point(idx int) geometry.Point {
	x, y := gg.Coordinate(idx)
	return geometry.Point{X: x, Y: y}
}

// CellCount returns Width×Height, the size of the index space.
func (gg *GridGraph) CellCount() int {
	return gg.Width * gg.Height
}

// Passable reports whether idx is inside the grid and not a wall.
func (gg *GridGraph) Passable(idx int) bool {
	if idx < 0 || idx >= gg.CellCount() {
		return false
	}
	x, y := gg.Coordinate(idx)

	return gg.walkable(x, y)
}

func (gg *GridGraph) walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.PassableThreshold
}

// Exits lists the walkable neighbours of idx in offset order (clockwise from north).
// Entering a cell costs its value; diagonal moves multiply that by DiagonalCost.
// Walls and out-of-range indices have no exits.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Exits(idx int) []core.Exit {
	if !gg.Passable(idx) {
		return nil
	}
	x, y := gg.Coordinate(idx)
	exits := make([]core.Exit, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.walkable(nx, ny) {
			continue
		}
		step := 1.0
		if d[0] != 0 && d[1] != 0 {
			// Diagonal corner cutting prevention
			if !gg.CornerCutting && (!gg.walkable(x+d[0], y) || !gg.walkable(x, y+d[1])) {
				continue
			}
			step = gg.DiagonalCost
		}
		exits = append(exits, core.Exit{
			To:   gg.Index(nx, ny),
			Cost: float64(gg.CellValues[ny][nx]) * step,
		})
	}

	return exits
}

// PathingDistance returns the Metric distance between two cells.
// Complexity: O(1).
func (gg *GridGraph) PathingDistance(from, to int) float64 {
	return geometry.Distance2D(gg.Metric, gg.Point(from), gg.Point(to))
}
