package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvnav/dijkstra"
	"github.com/katalvlaran/lvnav/gridgraph"
)

func benchGrid(b *testing.B, n int) *gridgraph.GridGraph {
	b.Helper()
	gg, err := gridgraph.From2D(ones(n, n), gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	return gg
}

// BenchmarkBuild_Sequential rebuilds a 128×128 field from one source,
// reusing the field's scratch buffers.
func BenchmarkBuild_Sequential(b *testing.B) {
	const n = 128
	gg := benchGrid(b, n)
	f, err := dijkstra.NewEmpty(n, n, 256)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Clear()
		_ = f.Build([]int{n*n/2 + n/2}, gg)
	}
}

// BenchmarkBuild_Parallel floods 32 sources with 4 workers.
func BenchmarkBuild_Parallel(b *testing.B) {
	const n = 128
	gg := benchGrid(b, n)
	sources := make([]int, 32)
	for i := range sources {
		sources[i] = (i * 517) % (n * n)
	}
	f, err := dijkstra.NewEmpty(n, n, 64, dijkstra.WithWorkers(4))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Clear()
		_ = f.Build(sources, gg)
	}
}
