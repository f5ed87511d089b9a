// Package dijkstra builds multi-source distance fields ("Dijkstra maps") over
// a core.BaseMap and answers flow queries against them.
//
// A DistanceField stores, per cell, the cheapest known cost to any source.
// Game agents chase by stepping to the lowest neighbour (BestExitToward) and
// flee by stepping to the highest (BestExitAway).
//
// Algorithm:
//
//   - Each source is flooded from depth 0 with a LIFO frontier. A popped cell
//     is lowered only if its recorded value is strictly greater than the popped
//     depth; its exits are pushed at depth+cost when that stays within MaxDepth
//     and the neighbour was not yet pushed during this source's pass.
//   - This is a label-correcting flood, not label-setting Dijkstra. Values are
//     always valid upper bounds and exact on tree-shaped maps, but a cell first
//     pushed via a long route keeps that depth for the pass. See the 3×3 corner
//     case in the tests.
//   - Multiple sources share the field; a later pass can only lower values.
//
// Parallel build:
//
//   - When len(sources) > Workers, Build snapshots the adjacency once
//     (core.NewAdjacency), floods chunks of Workers sources on separate
//     goroutines via errgroup, then reduces the layers by elementwise minimum
//     after the join. The caller's field is only written after the join.
//
// Complexity:
//
//   - Time:  O(S·(V + E)) for S sources, V cells and E exits.
//   - Space: O(V) for the field plus O(V) scratch; the parallel path adds
//     O(V + E) for the snapshot and O(V) per layer.
//
// Options:
//
//   - WithWorkers(n): parallel threshold and errgroup limit (default GOMAXPROCS).
//   - WithLogger(l):  slog logger; Debug on parallel fan-out.
//   - WithMetrics(r): metrics.Recorder notified once per Build.
//
// Errors (sentinel):
//
//   - ErrBadDimensions, ErrBadMaxDepth: invalid field geometry.
//   - ErrNilMap: nil map.
//   - ErrSizeMismatch, ErrBadValue: invalid FromValues input.
//   - core.ErrIndexOutOfRange: source, cell or exit target outside width*height.
//   - core.ErrInvalidCost: NaN, infinite or negative exit cost.
//
// Example usage:
//
//	field, err := dijkstra.New(w, h, []int{player}, gg, 64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	next, ok, _ := field.BestExitToward(monster, gg)
package dijkstra
