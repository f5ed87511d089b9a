package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for map contract violations.
var (
	// ErrInvalidCost indicates a NaN, infinite or negative cost reached the engine.
	ErrInvalidCost = errors.New("core: cost must be finite and non-negative")

	// ErrIndexOutOfRange indicates a cell index outside the declared index space.
	ErrIndexOutOfRange = errors.New("core: cell index out of range")

	// ErrNilMap indicates a nil BaseMap was supplied.
	ErrNilMap = errors.New("core: map is nil")
)

// Exit is one traversable edge out of a cell.
//
// To is the neighbour's cell index; Cost is the price of moving there.
type Exit struct {
	// To is the destination cell index.
	To int

	// Cost is the non-negative, finite traversal cost.
	Cost float64
}

// BaseMap supplies adjacency and heuristic information to the engines.
//
// Exits may return an empty slice for dead ends. Earlier entries are processed
// first, which only affects tie-breaking. PathingDistance should be admissible
// and consistent for A* to return optimal paths; it is not verified.
type BaseMap interface {
	// Exits lists the cells reachable from idx in one move.
	Exits(idx int) []Exit

	// PathingDistance estimates the remaining cost from one cell to another.
	PathingDistance(from, to int) float64
}

// Bounded is implemented by maps that declare the size of their index space.
// Valid indices are 0..CellCount()-1.
type Bounded interface {
	CellCount() int
}

// CheckCost reports ErrInvalidCost if c is NaN, ±Inf or negative.
func CheckCost(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidCost, c)
	}

	return nil
}

// CheckIndex reports ErrIndexOutOfRange unless 0 <= idx < n.
func CheckIndex(idx, n int) error {
	if idx < 0 || idx >= n {
		return fmt.Errorf("%w: index %d not in [0,%d)", ErrIndexOutOfRange, idx, n)
	}

	return nil
}

// CellCountOf returns m's declared index-space size, or (0, false)
// if m does not implement Bounded or declares no cells.
func CellCountOf(m BaseMap) (int, bool) {
	b, ok := m.(Bounded)
	if !ok {
		return 0, false
	}
	n := b.CellCount()
	if n <= 0 {
		return 0, false
	}

	return n, true
}
