package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// BestExitToward returns the exit of cell whose neighbour has the lowest
// recorded value, i.e. the next step towards the nearest source.
// Ties go to the earliest exit. ok is false when cell has no exits.
func (f *DistanceField) BestExitToward(cell int, m core.BaseMap) (next int, ok bool, err error) {
	return f.bestExit(cell, m, func(candidate, best float64) bool { return candidate < best })
}

// BestExitAway returns the exit of cell whose neighbour has the highest
// recorded value, i.e. the next step fleeing the sources. Unreachable
// neighbours rank highest. Ties go to the earliest exit.
func (f *DistanceField) BestExitAway(cell int, m core.BaseMap) (next int, ok bool, err error) {
	return f.bestExit(cell, m, func(candidate, best float64) bool { return candidate > best })
}

// bestExit scans cell's exits once, keeping the first neighbour that no later
// neighbour beats under better.
func (f *DistanceField) bestExit(cell int, m core.BaseMap, better func(candidate, best float64) bool) (int, bool, error) {
	if m == nil {
		return 0, false, ErrNilMap
	}
	n := len(f.values)
	if err := core.CheckIndex(cell, n); err != nil {
		return 0, false, err
	}

	best, bestVal, found := 0, 0.0, false
	for _, e := range m.Exits(cell) {
		if err := core.CheckIndex(e.To, n); err != nil {
			return 0, false, fmt.Errorf("exit %d→%d: %w", cell, e.To, err)
		}
		v := f.values[e.To]
		if !found || better(v, bestVal) {
			best, bestVal, found = e.To, v, true
		}
	}

	return best, found, nil
}
