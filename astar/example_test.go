// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Search on a corridor
////////////////////////////////////////////////////////////////////////////////

// ExampleSearch walks a single-lane corridor around a wall.
// Scenario:
//
//   - Grid values: 0 = wall, 1 = floor
//   - Conn4 with Manhattan heuristic
//   - The only route bends down the right side and back along the bottom.
func ExampleSearch() {
	grid := [][]int{
		{1, 1, 1, 0},
		{0, 0, 1, 0},
		{1, 1, 1, 1},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	path, err := astar.Search(gg, gg.Index(0, 0), gg.Index(0, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("success:", path.Success)
	for _, idx := range path.Steps {
		x, y := gg.Coordinate(idx)
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Println()

	// Output:
	// success: true
	// (0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Searcher with a custom map
////////////////////////////////////////////////////////////////////////////////

// ExampleSearcher shows buffer reuse with an arbitrary graph and a tight budget.
func ExampleSearcher() {
	// A ring of 8 cells: i → i+1 (mod 8), unit cost.
	ring := core.FuncMap{
		ExitsFunc: func(idx int) []core.Exit {
			return []core.Exit{{To: (idx + 1) % 8, Cost: 1}}
		},
		Cells: 8,
	}

	s := astar.NewSearcher(astar.WithMaxSteps(4))
	for _, end := range []int{3, 6} {
		path, _ := s.Search(ring, 0, end)
		fmt.Printf("to %d: success=%v steps=%v expanded=%d\n", end, path.Success, path.Steps, s.Expanded())
	}

	// Output:
	// to 3: success=true steps=[0 1 2 3] expanded=3
	// to 6: success=false steps=[] expanded=4
}
