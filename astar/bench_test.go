package astar_test

import (
	"testing"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/builder"
	"github.com/katalvlaran/lvnav/gridgraph"
)

// BenchmarkSearch_OpenGrid measures corner-to-corner search on an open 64×64 grid.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	gg, err := gridgraph.From2D(openGrid(64, 64), gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	start, end := gg.Index(0, 0), gg.Index(63, 63)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(gg, start, end)
	}
}

// BenchmarkSearcher_Terrain reuses one Searcher on random terrain with 20% walls.
func BenchmarkSearcher_Terrain(b *testing.B) {
	const n = 128
	grid, err := builder.Build(n, n, []builder.Option{builder.WithSeed(7), builder.WithCostRange(1, 4)},
		builder.Obstacles(0.2),
		builder.Terrain(),
		builder.Rect(0, 0, 0, 0, builder.Floor),
		builder.Rect(n-1, n-1, n-1, n-1, builder.Floor),
	)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	s := astar.NewSearcher()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Search(gg, 0, n*n-1)
	}
}
