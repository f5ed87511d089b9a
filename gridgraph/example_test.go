// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvnav/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous walkable regions in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = wall, 1,2,3 = terrain costs
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three regions.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (1,0) (2,0) (1,1)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
	// component 2: (0,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Exits
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Exits shows terrain costs flowing into exit costs.
func ExampleGridGraph_Exits() {
	grid := [][]int{
		{1, 5, 1},
		{1, 1, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	for _, e := range gg.Exits(gg.Index(1, 1)) {
		x, y := gg.Coordinate(e.To)
		fmt.Printf("(%d,%d) cost %.0f\n", x, y, e.Cost)
	}

	// Output:
	// (1,0) cost 5
	// (0,1) cost 1
}
