// Package builder generates grid maps for tests, benchmarks and demos.
//
// A map is built by composing Constructors over a canvas that starts as
// open Floor:
//
//	cells, err := builder.Build(41, 21,
//	    []builder.Option{builder.WithSeed(7)},
//	    builder.Maze(),
//	    builder.Terrain(),
//	)
//	gg, err := gridgraph.From2D(cells, gridgraph.Conn4)
//
// Constructors:
//
//   - Fill(v), Border(), Rect(x0,y0,x1,y1,v): deterministic shapes.
//   - Comb(): a tree-shaped map (spine plus teeth).
//   - Obstacles(p): random walls, one draw per walkable cell.
//   - Terrain(): random entry costs within WithCostRange.
//   - Maze(): a perfect maze; its walkable cells form a tree.
//
// Determinism: the same size, options, seed and constructor order always
// produce the same grid. Stochastic constructors return ErrNeedRandSource
// unless WithSeed or WithRand is given.
//
// Errors are the package sentinels (ErrTooSmall, ErrInvalidProbability,
// ErrNeedRandSource, ErrOutOfBounds), wrapped with the constructor name.
// Option constructors panic on meaningless input.
package builder
