package gridgraph_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/gridgraph"
)

// TestConnectedComponents_Conn4 finds three islands under orthogonal connectivity.
func TestConnectedComponents_Conn4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 3)

	want := [][]int{
		{1, 2, 6},
		{4, 9, 8, 13, 12},
		{10},
	}
	for i := range want {
		if !reflect.DeepEqual(sorted(comps[i]), sorted(want[i])) {
			t.Errorf("component %d = %v; want %v", i, comps[i], want[i])
		}
	}
}

// TestConnectedComponents_Conn8 merges diagonal neighbours only when no wall corner blocks.
func TestConnectedComponents_Conn8(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Len(t, gg.ConnectedComponents(), 2, "corner cutting is off by default")

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	opts.CornerCutting = true
	cut, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	assert.Len(t, cut.ConnectedComponents(), 1)
}

// TestConnectedComponents_AllWater returns no components.
func TestConnectedComponents_AllWater(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Empty(t, gg.ConnectedComponents())
}

// TestComponentOf agrees with ConnectedComponents.
func TestComponentOf(t *testing.T) {
	grid := [][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{1, 1, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	left := gg.ComponentOf(0)
	assert.EqualValues(t, 5, left.GetCardinality())
	assert.True(t, left.Contains(uint32(gg.Index(0, 2))))
	assert.False(t, left.Contains(uint32(gg.Index(3, 0))))

	right := gg.ComponentOf(gg.Index(3, 1))
	assert.EqualValues(t, 3, right.GetCardinality())

	assert.True(t, gg.ComponentOf(2).IsEmpty(), "wall has no component")
	assert.True(t, gg.ComponentOf(99).IsEmpty())
}

func sorted(in []int) []int {
	out := append([]int(nil), in...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
