// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/lvnav.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvnav/geometry"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid navigation.
type GridOptions struct {
	// PassableThreshold is the minimum cell value considered walkable.
	// Cells below it are walls and have no exits.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Metric is the heuristic used by PathingDistance.
	Metric geometry.DistanceAlg
	// DiagonalCost multiplies the entered cell's value on diagonal moves (Conn8 only).
	DiagonalCost float64
	// CornerCutting allows a diagonal move even when one of the two orthogonal
	// cells it squeezes between is a wall.
	CornerCutting bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=1 (values ≥1 are walkable), Conn=Conn4, Metric=Manhattan,
// DiagonalCost=√2, CornerCutting=false.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
		Metric:            geometry.Manhattan,
		DiagonalCost:      math.Sqrt2,
		CornerCutting:     false,
	}
}

// GridGraph treats a 2D integer grid as a navigation map. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value,
// which doubles as the cost of entering that cell.
// Cell indices are row-major: idx = y*Width + x.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int
	Metric            geometry.DistanceAlg
	DiagonalCost      float64
	CornerCutting     bool
	neighborOffsets   [][2]int
}
