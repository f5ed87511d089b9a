// Package bfs provides breadth-first search over a core.BaseMap,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Reaches cells in nondecreasing hop count from a start cell; exit costs
//     are ignored.
//   - Result carries Order (reach sequence), Depth (hops per cell) and
//     Parent (the BFS tree), so PathTo is a fewest-hop route.
//   - Hooks: OnEnqueue on discovery, OnDequeue and OnVisit when a cell is
//     taken off the queue. OnVisit may abort the walk.
//   - WithFilterNeighbor vetoes single exits; WithMaxDepth caps hops
//     (0 means no cap).
//
// Why
//
//   - Reachability within N moves (movement range, area-of-effect).
//   - Fewest-hop paths where terrain cost does not matter.
//   - A hop-count reference for distance fields on unit-cost maps.
//
// Determinism
//
//	Exits are enqueued in the order the map returns them, so the visit
//	sequence is reproducible for a deterministic map.
//
// Complexity (V = reached cells, E = their exits)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(gg, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(6),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return !occupied[nbr] }),
//	)
//	if err != nil {
//	    // ErrNilMap, ErrOptionViolation, core.ErrIndexOutOfRange, ctx error or hook error
//	}
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrNilMap                if the map is nil.
//   - ErrOptionViolation       if invalid Option (e.g. a negative hop cap).
//   - ErrNoPath                from PathTo for unreached cells.
//   - core.ErrIndexOutOfRange  for start or exits outside a core.Bounded map.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
