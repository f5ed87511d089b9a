package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvnav/dijkstra"
	"github.com/katalvlaran/lvnav/gridgraph"
)

// printField renders a field row by row, '#' for unreachable cells.
func printField(f *dijkstra.DistanceField) {
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if v, ok := f.Value(y*f.Width() + x); ok {
				fmt.Printf("%2.0f", v)
			} else {
				fmt.Print(" #")
			}
		}
		fmt.Println()
	}
}

// ExampleNew demonstrates a single-source field on a 3×3 grid.
// Scenario:
//
//   - Unit-cost Conn4 grid, source at the centre (index 4).
//   - maxDepth 1: the corners need two steps and stay unreachable.
func ExampleNew() {
	grid := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	field, err := dijkstra.New(3, 3, []int{4}, gg, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printField(field)

	// Output:
	//  # 1 #
	//  1 0 1
	//  # 1 #
}

// ExampleDistanceField_BestExitToward chases and flees along a corridor with
// two sources, one at each end.
func ExampleDistanceField_BestExitToward() {
	grid := [][]int{{1, 1, 1, 1, 1, 1, 1}}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	field, _ := dijkstra.New(7, 1, []int{0, 6}, gg, 10)
	printField(field)

	toward, _, _ := field.BestExitToward(2, gg)
	away, _, _ := field.BestExitAway(2, gg)
	fmt.Println("from 2: toward", toward, "away", away)

	// Output:
	//  0 1 2 3 2 1 0
	// from 2: toward 1 away 3
}
