// Package geometry provides the closed-form distance metrics and line rasterisation
// used by grid maps to produce heuristics and line-of-sight queries.
//
// Distance2D / Distance3D:
//
//   - Pythagoras:        Euclidean distance.
//   - PythagorasSquared: Euclidean distance without the square root (ordering only).
//   - Manhattan:         |dx| + |dy| (+ |dz|).
//   - Chebyshev:         max(|dx|, |dy|) (, |dz|); the exact cost of unit 8-way movement.
//
// Line2D walks Bresenham's line between two points, endpoints inclusive.
// ProjectAngle moves a point along a compass bearing (0 rad = north = -Y).
//
// All functions are pure and allocation-free except Line2D.
package geometry

import "math"

// DistanceAlg selects a distance metric.
type DistanceAlg int

const (
	// Pythagoras is straight-line Euclidean distance.
	Pythagoras DistanceAlg = iota
	// PythagorasSquared is Euclidean distance squared.
	PythagorasSquared
	// Manhattan is the taxicab distance.
	Manhattan
	// Chebyshev is the king-move distance.
	Chebyshev
)

// String returns the metric's name.
func (a DistanceAlg) String() string {
	switch a {
	case Pythagoras:
		return "pythagoras"
	case PythagorasSquared:
		return "pythagoras_squared"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	default:
		return "unknown"
	}
}

// Point is an integer 2D grid coordinate.
type Point struct {
	X, Y int
}

// Point3 is an integer 3D grid coordinate.
type Point3 struct {
	X, Y, Z int
}

// Distance2D returns the distance between a and b under alg.
// Unknown algorithms fall back to Pythagoras.
func Distance2D(alg DistanceAlg, a, b Point) float64 {
	dx := absDiff(a.X, b.X)
	dy := absDiff(a.Y, b.Y)
	switch alg {
	case PythagorasSquared:
		return dx*dx + dy*dy
	case Manhattan:
		return dx + dy
	case Chebyshev:
		return math.Max(dx, dy)
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// Distance3D returns the distance between a and b under alg.
// Unknown algorithms fall back to Pythagoras.
func Distance3D(alg DistanceAlg, a, b Point3) float64 {
	dx := absDiff(a.X, b.X)
	dy := absDiff(a.Y, b.Y)
	dz := absDiff(a.Z, b.Z)
	switch alg {
	case PythagorasSquared:
		return dx*dx + dy*dy + dz*dz
	case Manhattan:
		return dx + dy + dz
	case Chebyshev:
		return math.Max(dx, math.Max(dy, dz))
	default:
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
}

// ProjectAngle moves radius units from start along angle (radians, clockwise from
// north). North is negative Y, east is positive X. The offset is truncated toward
// zero after snapping away floating-point noise below 1e-9.
func ProjectAngle(start Point, radius, angle float64) Point {
	return Point{
		X: start.X + snapTrunc(radius*math.Sin(angle)),
		Y: start.Y - snapTrunc(radius*math.Cos(angle)),
	}
}

func snapTrunc(v float64) int {
	return int(math.Trunc(math.Round(v*1e9) / 1e9))
}

// Line2D returns every cell on the Bresenham line from start to end, inclusive.
func Line2D(start, end Point) []Point {
	dx := end.X - start.X
	dy := end.Y - start.Y
	sx, sy := 1, 1
	if dx < 0 {
		sx, dx = -1, -dx
	}
	if dy < 0 {
		sy, dy = -1, -dy
	}

	n := dx
	if dy > n {
		n = dy
	}
	out := make([]Point, 0, n+1)

	// err tracks dx - dy scaled by 2 so the loop stays in integers.
	err := dx - dy
	x, y := start.X, start.Y
	for {
		out = append(out, Point{x, y})
		if x == end.X && y == end.Y {
			return out
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func absDiff(a, b int) float64 {
	if a > b {
		return float64(a - b)
	}

	return float64(b - a)
}
