package builder

const (
	methodFill   = "Fill"
	methodBorder = "Border"
	methodRect   = "Rect"
	methodComb   = "Comb"
)

// Fill sets every cell to v.
func Fill(v int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		for y := range c.Cells {
			for x := range c.Cells[y] {
				c.Cells[y][x] = v
			}
		}
		return nil
	}
}

// Border walls off the outermost ring of cells.
func Border() Constructor {
	return func(c *Canvas, _ builderConfig) error {
		for x := 0; x < c.Width; x++ {
			c.Cells[0][x] = Wall
			c.Cells[c.Height-1][x] = Wall
		}
		for y := 0; y < c.Height; y++ {
			c.Cells[y][0] = Wall
			c.Cells[y][c.Width-1] = Wall
		}
		return nil
	}
}

// Rect sets the inclusive rectangle (x0,y0)-(x1,y1) to v. Use Wall for
// obstacles and values above Floor for rough ground.
func Rect(x0, y0, x1, y1, v int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if x1 < x0 || y1 < y0 {
			return wrapf(methodRect, "(%d,%d)-(%d,%d) is inverted", ErrOutOfBounds, x0, y0, x1, y1)
		}
		if !c.InBounds(x0, y0) || !c.InBounds(x1, y1) {
			return wrapf(methodRect, "(%d,%d)-(%d,%d) on %dx%d", ErrOutOfBounds, x0, y0, x1, y1, c.Width, c.Height)
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.Cells[y][x] = v
			}
		}
		return nil
	}
}

// Comb draws a tree: an open spine along row 0 with a tooth hanging down
// from every even column, everything else walled. Every pair of cells has
// exactly one simple path between them.
func Comb() Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if c.Height < 2 {
			return wrapf(methodComb, "height=%d (must be >= 2)", ErrTooSmall, c.Height)
		}
		for y := range c.Cells {
			for x := range c.Cells[y] {
				switch {
				case y == 0, x%2 == 0:
					c.Cells[y][x] = Floor
				default:
					c.Cells[y][x] = Wall
				}
			}
		}
		return nil
	}
}
