package dijkstra

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvnav/core"
)

// layer is one worker's private scratch field and the sources it floods.
type layer struct {
	values  []float64
	sources []int
}

// buildParallel floods chunks of sources concurrently and folds the results
// into f by elementwise minimum.
//
// Steps:
//  1. Snapshot m's exits sequentially; m need not be safe for concurrent use.
//  2. Split sources into chunks of Workers; one full-size layer per chunk.
//  3. Flood each layer on its own goroutine over the read-only snapshot.
//  4. After the join, reduce every layer into f.values.
//
// Each layer matches a sequential build of its chunk alone, so the reduced
// field is an upper bound at least as tight as any single layer.
func (f *DistanceField) buildParallel(sources []int, m core.BaseMap) error {
	n := len(f.values)
	workers := f.options.Workers

	// 1) Immutable adjacency snapshot, validated once
	adj, err := core.NewAdjacency(m, n)
	if err != nil {
		return err
	}

	// 2) Partition sources
	layers := make([]*layer, 0, (len(sources)+workers-1)/workers)
	for lo := 0; lo < len(sources); lo += workers {
		hi := min(lo+workers, len(sources))
		layers = append(layers, &layer{sources: sources[lo:hi]})
	}
	f.options.Logger.Debug("dijkstra: parallel build",
		slog.Int("sources", len(sources)),
		slog.Int("workers", workers),
		slog.Int("layers", len(layers)),
		slog.Int("edges", adj.EdgeCount()))

	// 3) Fork
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for _, l := range layers {
		g.Go(func() error {
			return l.flood(ctx, adj, f.maxDepth)
		})
	}

	// 4) Join, then reduce in layer order
	if err = g.Wait(); err != nil {
		return err
	}
	for _, l := range layers {
		for i, v := range l.values {
			if v < f.values[i] {
				f.values[i] = v
			}
		}
	}

	return nil
}

// flood allocates the layer's field and runs the sequential pass per source.
func (l *layer) flood(ctx context.Context, adj core.Adjacency, maxDepth float64) error {
	n := len(adj)
	l.values = make([]float64, n)
	for i := range l.values {
		l.values[i] = Unreachable
	}
	frontier := make([]frontierEntry, 0, n)
	guard := bitset.New(uint(n))

	var err error
	for _, src := range l.sources {
		if err = ctx.Err(); err != nil {
			return err
		}
		guard.ClearAll()
		if frontier, err = flood(l.values, src, adj, maxDepth, frontier, guard); err != nil {
			return fmt.Errorf("layer source %d: %w", src, err)
		}
	}

	return nil
}
