package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeValue indicates a passable cell carries a negative movement cost.
	ErrNegativeValue = errors.New("gridgraph: passable cell values must be non-negative")
	// ErrBadDiagonalCost indicates DiagonalCost is NaN, infinite or not positive.
	ErrBadDiagonalCost = errors.New("gridgraph: DiagonalCost must be finite and positive")
)
