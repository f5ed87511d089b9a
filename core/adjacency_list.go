package core

import "fmt"

// Adjacency is a read-only snapshot of every cell's exits, indexed by cell.
//
// It is produced once by NewAdjacency and never mutated afterwards, so it can be
// shared by concurrent readers without locking. PathingDistance is not captured;
// the snapshot is meant for flood fills that only need Exits.
type Adjacency [][]Exit

// NewAdjacency queries m sequentially for cells 0..n-1 and validates every exit.
//
// Each exit's cost must pass CheckCost and its target must lie in [0,n).
// The exit slices are copied so later changes to m cannot leak into the snapshot.
//
// Complexity: O(n + E) time and memory.
func NewAdjacency(m BaseMap, n int) (Adjacency, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative cell count %d", ErrIndexOutOfRange, n)
	}

	adj := make(Adjacency, n)
	for idx := 0; idx < n; idx++ {
		exits := m.Exits(idx)
		if len(exits) == 0 {
			continue
		}
		row := make([]Exit, len(exits))
		for i, e := range exits {
			if err := CheckIndex(e.To, n); err != nil {
				return nil, fmt.Errorf("exit %d of cell %d: %w", i, idx, err)
			}
			if err := CheckCost(e.Cost); err != nil {
				return nil, fmt.Errorf("exit %d→%d: %w", idx, e.To, err)
			}
			row[i] = e
		}
		adj[idx] = row
	}

	return adj, nil
}

// Exits returns the snapshot row for idx, or nil when idx is out of range.
func (a Adjacency) Exits(idx int) []Exit {
	if idx < 0 || idx >= len(a) {
		return nil
	}

	return a[idx]
}

// PathingDistance always returns 0; a snapshot carries no heuristic.
// It exists so an Adjacency satisfies BaseMap (A* degrades to Dijkstra order).
func (a Adjacency) PathingDistance(_, _ int) float64 { return 0 }

// CellCount returns the number of cells in the snapshot.
func (a Adjacency) CellCount() int { return len(a) }

// EdgeCount returns the total number of exits across all cells.
func (a Adjacency) EdgeCount() int {
	total := 0
	for _, row := range a {
		total += len(row)
	}

	return total
}
