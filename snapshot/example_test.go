package snapshot_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/lvnav/dijkstra"
	"github.com/katalvlaran/lvnav/snapshot"
)

// ExampleEncode stores a small field with Zstandard and reads it back.
func ExampleEncode() {
	f, _ := dijkstra.FromValues(3, 1, 4, []float64{0, 1, dijkstra.Unreachable})

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, f, snapshot.Zstd); err != nil {
		fmt.Println("error:", err)
		return
	}
	got, err := snapshot.Decode(&buf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < got.Len(); i++ {
		v, _ := got.Value(i)
		if v == dijkstra.Unreachable {
			fmt.Print("# ")
			continue
		}
		fmt.Printf("%v ", v)
	}
	fmt.Println()
	// Output:
	// 0 1 #
}
