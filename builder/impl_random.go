package builder

const (
	methodObstacles = "Obstacles"
	methodTerrain   = "Terrain"
	methodMaze      = "Maze"
)

// Obstacles turns each walkable cell into a Wall with probability p.
// Requires WithSeed or WithRand.
func Obstacles(p float64) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		// 1) Validate before touching the canvas
		if p < 0 || p > 1 {
			return wrapf(methodObstacles, "p=%v", ErrInvalidProbability, p)
		}
		if cfg.rng == nil {
			return wrapf(methodObstacles, "no rng", ErrNeedRandSource)
		}

		// 2) One draw per cell in row-major order keeps seeds reproducible
		for y := range c.Cells {
			for x := range c.Cells[y] {
				if c.Cells[y][x] >= Floor && cfg.rng.Float64() < p {
					c.Cells[y][x] = Wall
				}
			}
		}
		return nil
	}
}

// Terrain gives each walkable cell a random cost from the WithCostRange
// range (default 1..9). Requires WithSeed or WithRand.
func Terrain() Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if cfg.rng == nil {
			return wrapf(methodTerrain, "no rng", ErrNeedRandSource)
		}
		span := cfg.maxCost - cfg.minCost + 1
		for y := range c.Cells {
			for x := range c.Cells[y] {
				if c.Cells[y][x] >= Floor {
					c.Cells[y][x] = cfg.minCost + cfg.rng.Intn(span)
				}
			}
		}
		return nil
	}
}

// Maze carves a perfect maze with a randomized depth-first backtracker.
//
// Rooms sit on odd coordinates and the walls between them are knocked out as
// the walk advances two cells at a time, so the walkable cells form a tree.
// An even width or height leaves the last column or row walled.
// Requires a canvas of at least 3×3 and WithSeed or WithRand.
func Maze() Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		// 1) Validate
		if c.Width < 3 || c.Height < 3 {
			return wrapf(methodMaze, "%dx%d (must be >= 3x3)", ErrTooSmall, c.Width, c.Height)
		}
		if cfg.rng == nil {
			return wrapf(methodMaze, "no rng", ErrNeedRandSource)
		}

		// 2) Start fully walled
		for y := range c.Cells {
			for x := range c.Cells[y] {
				c.Cells[y][x] = Wall
			}
		}

		// 3) Backtrack from (1,1)
		type point struct{ x, y int }
		dirs := [4]point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}
		stack := []point{{1, 1}}
		c.Cells[1][1] = Floor
		candidates := make([]point, 0, len(dirs))
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			candidates = candidates[:0]
			for _, d := range dirs {
				nx, ny := cur.x+d.x, cur.y+d.y
				// keep a one-cell wall ring around the maze
				if nx > 0 && nx < c.Width-1 && ny > 0 && ny < c.Height-1 && c.Cells[ny][nx] == Wall {
					candidates = append(candidates, d)
				}
			}
			if len(candidates) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			d := candidates[cfg.rng.Intn(len(candidates))]
			c.Cells[cur.y+d.y/2][cur.x+d.x/2] = Floor
			next := point{cur.x + d.x, cur.y + d.y}
			c.Cells[next.y][next.x] = Floor
			stack = append(stack, next)
		}
		return nil
	}
}
