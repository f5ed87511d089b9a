// Package flowcache keeps a dijkstra.DistanceField in step with moving
// sources without rebuilding it every frame.
//
// A rebuild is owed when the source list changes length, when any source
// moves at least DirtyDistance cells (Manhattan) from where it was at the
// last build, or after MarkDirty. Owed rebuilds are gated by a
// golang.org/x/time/rate token bucket; a throttled rebuild stays owed and is
// retried on the next Update. The first build, and the first build after a
// Resize or a failed build, bypass the limiter.
//
// Usage
//
//	cache, err := flowcache.New(w, h, 64,
//	    flowcache.WithRate(20, 1),          // at most 20 rebuilds per second
//	    flowcache.WithDirtyDistance(2),
//	    flowcache.WithFieldOptions(dijkstra.WithWorkers(4)),
//	)
//	// each tick:
//	if _, err := cache.Update(playerCells, grid); err != nil { ... }
//	next, ok, err := cache.BestExitToward(monster, grid)
package flowcache
