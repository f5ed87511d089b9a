// Package astar implements single-target A* search over a core.BaseMap.
//
// A search keeps an open set (a min-heap keyed by f = g + h, ties broken by
// insertion order) and a closed set of expanded cells with the f they were
// expanded at. Successors are scored g' = g + cost, h' = PathingDistance(s, end)
// and skipped when the open set already holds the same cell at a strictly lower
// f, or the closed set holds it at a strictly lower f. An equal f in the open set
// keeps the entry and its rank but takes the newer parent; a higher one is
// lowered in place. The search stops as soon as the goal is generated as a
// successor.
//
// Budget:
//
//   - At most MaxSteps expansions (default 2048). When the budget runs out the
//     result is a failed NavigationPath and a nil error; no partial path is returned.
//
// Optimality:
//
//   - Paths are optimal when PathingDistance is admissible and consistent and
//     the goal is not generated early via a costlier edge. The heuristic is not
//     verified.
//
// Complexity:
//
//   - Time:  O(S·d·log S), S = expansions, d = exits per cell.
//   - Space: O(S·d) for the open, closed and parent maps.
//
// Options:
//
//   - WithMaxSteps(n): expansion budget (n > 0, panics otherwise).
//   - WithLogger(l):   slog logger; Debug on budget exhaustion, Warn on broken chains.
//   - WithMetrics(r):  metrics.Recorder notified once per search.
//
// Errors (sentinel):
//
//   - ErrNilMap            if the map is nil.
//   - ErrInvalidHeuristic  if PathingDistance returns NaN, ±Inf or a negative value.
//   - ErrBrokenPath        if the parent chain cannot be walked back to start.
//   - core.ErrInvalidCost  if an exit cost is NaN, ±Inf or negative.
//   - core.ErrIndexOutOfRange if start, end or an exit target lies outside a
//     core.Bounded map.
//
// Example usage:
//
//	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)
//	path, err := astar.Search(gg, gg.Index(0, 0), gg.Index(9, 9))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if path.Success {
//	    fmt.Println(path.Steps)
//	}
package astar
