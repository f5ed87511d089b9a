// Package core defines the contract between a game map and the lvnav search engines.
//
// The engines never own a map. They consume two operations over a flat, enumerable
// index space (cells numbered 0..N-1, typically x + y*width):
//
//   - Exits(idx):               neighbours reachable from idx, each with a traversal cost.
//   - PathingDistance(from, to): heuristic estimate of the remaining cost (A* only).
//
// Any type with these two methods is a BaseMap. If it also reports CellCount, every
// index it hands back is bounds-checked by the engines before it touches an array.
//
// Costs must be finite and non-negative. Use CheckCost and CheckIndex at the boundary;
// both return sentinel errors (ErrInvalidCost, ErrIndexOutOfRange) wrapped with context,
// so callers can test with errors.Is.
//
// Adjacency is an immutable, validated snapshot of a whole map's exits. It is built
// once, sequentially, and can then be shared read-only by any number of goroutines,
// which makes it the hand-off point for the parallel distance-field builder when the
// original map is not safe for concurrent use.
//
// FuncMap adapts plain functions to BaseMap for ad-hoc graphs and tests.
//
// Complexity:
//
//   - CheckCost, CheckIndex: O(1).
//   - NewAdjacency:          O(N + E) time and memory.
package core
