package builder

import (
	"fmt"
)

// Wall and Floor are the values constructors write for blocked and plain
// walkable cells. Any value >= Floor is walkable under the default
// gridgraph.GridOptions and costs that much to enter.
const (
	Wall  = 0
	Floor = 1
)

// Canvas is the grid under construction, indexed Cells[y][x].
type Canvas struct {
	Width, Height int
	Cells         [][]int
}

// InBounds reports whether (x,y) lies on the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Constructor applies one deterministic mutation to the canvas.
// Constructors validate their parameters before writing anything.
type Constructor func(c *Canvas, cfg builderConfig) error

// Build allocates a width×height canvas of Floor cells, resolves opts and
// applies cons in order. The result can be passed straight to
// gridgraph.From2D or gridgraph.NewGridGraph.
//
// Any constructor error is wrapped as "Build: …" and returned immediately.
func Build(width, height int, opts []Option, cons ...Constructor) ([][]int, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Build: %dx%d: %w", width, height, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)

	c := &Canvas{Width: width, Height: height, Cells: make([][]int, height)}
	for y := range c.Cells {
		c.Cells[y] = make([]int, width)
		for x := range c.Cells[y] {
			c.Cells[y][x] = Floor
		}
	}

	for _, con := range cons {
		if err := con(c, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return c.Cells, nil
}
