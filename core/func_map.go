package core

// FuncMap adapts plain functions to BaseMap.
//
// A nil DistanceFunc yields a zero heuristic. Cells > 0 declares the index
// space; Cells <= 0 leaves it undeclared (CellCountOf reports false).
type FuncMap struct {
	ExitsFunc    func(idx int) []Exit
	DistanceFunc func(from, to int) float64
	Cells        int
}

// Exits calls ExitsFunc, or returns nil if it is unset.
func (f FuncMap) Exits(idx int) []Exit {
	if f.ExitsFunc == nil {
		return nil
	}

	return f.ExitsFunc(idx)
}

// PathingDistance calls DistanceFunc, or returns 0 if it is unset.
func (f FuncMap) PathingDistance(from, to int) float64 {
	if f.DistanceFunc == nil {
		return 0
	}

	return f.DistanceFunc(from, to)
}

// CellCount returns Cells.
func (f FuncMap) CellCount() int { return f.Cells }
