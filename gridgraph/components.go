package gridgraph

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// ConnectedComponents finds all contiguous regions of walkable cells,
// following the same exits Exits reports (so corner-cutting rules apply).
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.CellCount()
	seen := bitset.New(uint(total))
	var comps [][]int
	queue := make([]int, 0, total)

	for i0 := 0; i0 < total; i0++ {
		if !gg.Passable(i0) || seen.Test(uint(i0)) {
			continue
		}
		// BFS to collect component
		queue = append(queue[:0], i0)
		seen.Set(uint(i0))
		for qi := 0; qi < len(queue); qi++ {
			for _, e := range gg.Exits(queue[qi]) {
				if !seen.Test(uint(e.To)) {
					seen.Set(uint(e.To))
					queue = append(queue, e.To)
				}
			}
		}
		comp := make([]int, len(queue))
		copy(comp, queue)
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf returns the set of cells reachable from idx (idx included).
// A wall or out-of-range idx yields an empty bitmap.
// Useful to reject unreachable A* goals before searching.
//
// Time: O(|component|·d).
func (gg *GridGraph) ComponentOf(idx int) *roaring.Bitmap {
	set := roaring.New()
	if !gg.Passable(idx) {
		return set
	}
	set.Add(uint32(idx))
	queue := []int{idx}
	for qi := 0; qi < len(queue); qi++ {
		for _, e := range gg.Exits(queue[qi]) {
			if set.CheckedAdd(uint32(e.To)) {
				queue = append(queue, e.To)
			}
		}
	}

	return set
}
