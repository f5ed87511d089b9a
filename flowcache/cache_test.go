package flowcache_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dijkstra"
	"github.com/katalvlaran/lvnav/flowcache"
	"github.com/katalvlaran/lvnav/gridgraph"
	"github.com/katalvlaran/lvnav/metrics"
)

// corridor returns a 1-row walkable strip of n cells.
func corridor(t testing.TB, n int) *gridgraph.GridGraph {
	t.Helper()
	row := make([]int, n)
	for i := range row {
		row[i] = 1
	}
	gg, err := gridgraph.From2D([][]int{row}, gridgraph.Conn4)
	require.NoError(t, err)
	return gg
}

func value(t *testing.T, c *flowcache.Cache, idx int) float64 {
	t.Helper()
	v, ok := c.Value(idx)
	require.True(t, ok)
	return v
}

func TestNew_Validation(t *testing.T) {
	_, err := flowcache.New(0, 1, 10)
	assert.ErrorIs(t, err, dijkstra.ErrBadDimensions)

	_, err = flowcache.New(1, 1, -1)
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDepth)

	assert.Panics(t, func() { _, _ = flowcache.New(1, 1, 1, flowcache.WithRate(1, 0)) })
	assert.Panics(t, func() { _, _ = flowcache.New(1, 1, 1, flowcache.WithDirtyDistance(0)) })
}

func TestUpdate_FirstBuildAndIdle(t *testing.T) {
	gg := corridor(t, 5)
	c, err := flowcache.New(5, 1, 10)
	require.NoError(t, err)
	assert.False(t, c.Valid())
	assert.True(t, c.Pending())

	rebuilt, err := c.Update([]int{0}, gg)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.True(t, c.Valid())
	assert.Equal(t, 4.0, value(t, c, 4))

	rebuilt, err = c.Update([]int{0}, gg)
	require.NoError(t, err)
	assert.False(t, rebuilt, "unchanged sources must not rebuild")
	assert.Equal(t, 1, c.Rebuilds())
}

// TestUpdate_Moved clears stale values rather than merging with them.
func TestUpdate_Moved(t *testing.T) {
	gg := corridor(t, 5)
	c, err := flowcache.New(5, 1, 10)
	require.NoError(t, err)

	_, err = c.Update([]int{0}, gg)
	require.NoError(t, err)
	rebuilt, err := c.Update([]int{4}, gg)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Equal(t, 4.0, value(t, c, 0))
	assert.Equal(t, 0.0, value(t, c, 4))

	// a change in source count always rebuilds
	rebuilt, err = c.Update([]int{4, 0}, gg)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Equal(t, 2.0, value(t, c, 2))
}

// TestUpdate_Throttled latches a throttled change until a token is granted.
func TestUpdate_Throttled(t *testing.T) {
	gg := corridor(t, 5)
	// zero refill: exactly one token after the free first build
	c, err := flowcache.New(5, 1, 10, flowcache.WithRate(0, 1))
	require.NoError(t, err)

	rebuilt, err := c.Update([]int{0}, gg)
	require.NoError(t, err)
	assert.True(t, rebuilt, "first build is never throttled")

	rebuilt, err = c.Update([]int{4}, gg)
	require.NoError(t, err)
	assert.True(t, rebuilt)

	rebuilt, err = c.Update([]int{2}, gg)
	require.NoError(t, err)
	assert.False(t, rebuilt)
	assert.True(t, c.Pending())
	assert.Equal(t, 0.0, value(t, c, 4), "field still reflects the last build")

	c.MarkDirty()
	rebuilt, err = c.Update([]int{2}, gg)
	require.NoError(t, err)
	assert.False(t, rebuilt)
	assert.Equal(t, 2, c.Rebuilds())
}

func TestUpdate_DirtyDistance(t *testing.T) {
	gg := corridor(t, 5)
	c, err := flowcache.New(5, 1, 10, flowcache.WithDirtyDistance(2))
	require.NoError(t, err)

	_, err = c.Update([]int{0}, gg)
	require.NoError(t, err)

	rebuilt, err := c.Update([]int{1}, gg)
	require.NoError(t, err)
	assert.False(t, rebuilt, "one-cell move is below the threshold")
	assert.False(t, c.Pending())

	// distance is measured from the last built position, not the last request
	rebuilt, err = c.Update([]int{2}, gg)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Equal(t, 0.0, value(t, c, 2))
}

func TestMarkDirty(t *testing.T) {
	gg := corridor(t, 3)
	c, err := flowcache.New(3, 1, 10)
	require.NoError(t, err)

	_, err = c.Update([]int{1}, gg)
	require.NoError(t, err)
	c.MarkDirty()
	rebuilt, err := c.Update([]int{1}, gg)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.False(t, c.Pending())
}

func TestResize(t *testing.T) {
	c, err := flowcache.New(5, 1, 10, flowcache.WithRate(0, 1))
	require.NoError(t, err)
	_, err = c.Update([]int{0}, corridor(t, 5))
	require.NoError(t, err)

	require.NoError(t, c.Resize(5, 1))
	assert.True(t, c.Valid(), "same size is a no-op")

	require.NoError(t, c.Resize(7, 1))
	assert.False(t, c.Valid())
	assert.Equal(t, 7, c.Field().Width())
	assert.Equal(t, 10.0, c.Field().MaxDepth())

	// free rebuild, then the only token, then throttled
	rebuilt, err := c.Update([]int{0}, corridor(t, 7))
	require.NoError(t, err)
	assert.True(t, rebuilt)
	rebuilt, err = c.Update([]int{6}, corridor(t, 7))
	require.NoError(t, err)
	assert.True(t, rebuilt)
	rebuilt, err = c.Update([]int{3}, corridor(t, 7))
	require.NoError(t, err)
	assert.False(t, rebuilt)

	// a resize rebuilds regardless of the limiter

	require.NoError(t, c.Resize(3, 1))
	rebuilt, err = c.Update([]int{0}, corridor(t, 3))
	require.NoError(t, err)
	assert.True(t, rebuilt)

	assert.ErrorIs(t, c.Resize(0, 3), dijkstra.ErrBadDimensions)
}

// TestUpdate_Errors leaves the cache invalid so the next call retries.
func TestUpdate_Errors(t *testing.T) {
	gg := corridor(t, 3)
	c, err := flowcache.New(3, 1, 10, flowcache.WithRate(0, 1))
	require.NoError(t, err)

	_, err = c.Update([]int{0}, nil)
	assert.ErrorIs(t, err, flowcache.ErrNilMap)

	_, err = c.Update([]int{0}, gg)
	require.NoError(t, err)

	// uses the only token and fails
	_, err = c.Update([]int{9}, gg)
	assert.True(t, errors.Is(err, core.ErrIndexOutOfRange))
	assert.False(t, c.Valid())

	rebuilt, err := c.Update([]int{2}, gg)
	require.NoError(t, err)
	assert.True(t, rebuilt)
}

func TestCache_FlowQueries(t *testing.T) {
	gg := corridor(t, 5)
	c, err := flowcache.New(5, 1, 10)
	require.NoError(t, err)
	_, err = c.Update([]int{0}, gg)
	require.NoError(t, err)

	next, ok, err := c.BestExitToward(2, gg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, next)

	next, ok, err = c.BestExitAway(2, gg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, next)
}

func TestCache_Options(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var rec metrics.Basic

	c, err := flowcache.New(5, 1, 10,
		flowcache.WithLogger(logger),
		flowcache.WithFieldOptions(dijkstra.WithMetrics(&rec)),
	)
	require.NoError(t, err)
	_, err = c.Update([]int{0}, corridor(t, 5))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "flowcache: rebuilt")
	assert.Contains(t, buf.String(), "rebuilds=1")
	assert.Equal(t, int64(1), rec.Builds.Load())
}

// TestCache_Concurrent hammers the cache from several goroutines; run with -race.
func TestCache_Concurrent(t *testing.T) {
	gg := corridor(t, 16)
	c, err := flowcache.New(16, 1, 32)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if _, err := c.Update([]int{(g + i) % 16}, gg); err != nil {
					errs <- err
					return
				}
				if _, _, err := c.BestExitToward(8, gg); err != nil {
					errs <- err
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
	assert.True(t, c.Valid())
}
