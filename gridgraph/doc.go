// Package gridgraph treats a 2D grid of cells as a navigation map, enabling
// A* searches, distance fields and component analysis over it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable PassableThreshold.
//   - Implements core.BaseMap: Exits (walkable neighbours with entry costs) and
//     PathingDistance (heuristic from a geometry.DistanceAlg).
//   - Implements core.Bounded: CellCount = Width×Height, so engines bounds-check.
//   - Identifies connected components of walkable cells.
//
// Why:
//
//   - Game maps: walls, terrain costs (swamp = 3, road = 1), 4- or 8-way movement.
//   - Quick rejection of unreachable goals via ComponentOf before running A*.
//
// Complexity:
//
//   - Exits:               O(d), d = number of neighbours (4 or 8).
//   - PathingDistance:     O(1).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ComponentOf:         O(|component|×d).
//
// Options:
//
//   - GridOptions.PassableThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.Metric: heuristic metric (Manhattan suits Conn4, Chebyshev suits Conn8).
//   - GridOptions.DiagonalCost: diagonal multiplier (default √2).
//   - GridOptions.CornerCutting: allow diagonals that squeeze past a wall corner.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeValue: a walkable cell has a negative value.
//   - ErrBadDiagonalCost: DiagonalCost is not finite and positive (Conn8 only).
package gridgraph
