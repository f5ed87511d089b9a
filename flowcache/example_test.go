package flowcache_test

import (
	"fmt"

	"github.com/katalvlaran/lvnav/flowcache"
	"github.com/katalvlaran/lvnav/gridgraph"
)

// ExampleCache_Update follows a target along a corridor. A one-cell move is
// ignored with a dirty distance of 2.
func ExampleCache_Update() {
	gg, _ := gridgraph.From2D([][]int{{1, 1, 1, 1, 1, 1}}, gridgraph.Conn4)
	cache, _ := flowcache.New(6, 1, 16, flowcache.WithDirtyDistance(2))

	for _, target := range []int{5, 4, 3, 3} {
		rebuilt, _ := cache.Update([]int{target}, gg)
		d, _ := cache.Value(0)
		fmt.Printf("target %d: rebuilt=%v distance=%v\n", target, rebuilt, d)
	}
	// Output:
	// target 5: rebuilt=true distance=5
	// target 4: rebuilt=false distance=5
	// target 3: rebuilt=true distance=3
	// target 3: rebuilt=false distance=3
}
