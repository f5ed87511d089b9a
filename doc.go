// Package lvnav is an in-memory pathfinding toolkit for tile and cell maps:
// single-target A* search, multi-source distance fields ("Dijkstra maps")
// and the flow queries that turn a field into movement.
//
// 🚀 What is in the box?
//
//	• core/       : the map contract (BaseMap, Exit), cost and index checks,
//	                a validated adjacency snapshot and a func adapter
//	• gridgraph/  : 2D integer grids as maps: Conn4/Conn8, weighted cells,
//	                corner-cut control, connected components
//	• geometry/   : points, distance metrics, angle projection, Bresenham lines
//	• astar/      : bounded A* (2048 expansions by default) with reusable searchers
//	• dijkstra/   : distance fields: sequential flood, parallel fork-join build,
//	                BestExitToward / BestExitAway
//	• bfs/        : hop-count traversal with hooks and depth limits
//	• flowcache/  : rate-limited rebuilds of a field that follows moving sources
//	• snapshot/   : compressed binary persistence of fields (LZ4, Zstandard)
//	• builder/    : seeded map generation (mazes, obstacles, terrain) for tests
//	• metrics/    : Recorder interface, atomic counters, Prometheus export
//
// ✨ Design notes
//
//   - Maps are read through the tiny core.BaseMap interface; anything that
//     can list a cell's exits can be searched.
//   - Engines own their scratch buffers, so per-frame rebuilds do not allocate.
//   - Every engine takes functional options, a *slog.Logger and a
//     metrics.Recorder; defaults discard both.
//   - Bad maps, costs and indices are returned errors wrapping a package
//     sentinel; only invalid option arguments panic. Unreachable goals and
//     depth cut-offs are ordinary results.
//
// Quick ASCII example: a 3×3 open grid (Conn4) flooded from its centre.
//
//	2 1 2
//	1 0 1
//	2 1 2
//
// A monster at a corner steps to the lowest neighbour (BestExitToward) to
// close in, or to the highest (BestExitAway) to flee.
//
//	go get github.com/katalvlaran/lvnav
package lvnav
