package flowcache

import (
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dijkstra"
	"github.com/katalvlaran/lvnav/geometry"
)

// Cache owns a distance field that follows a set of moving sources.
//
// Update rebuilds the field only when the sources moved at least
// DirtyDistance cells or MarkDirty was called, and then only when the rate
// limiter grants a token. A stale request that was throttled stays pending
// until a later Update can serve it. The first build is never throttled.
//
// A Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	options Options
	field   *dijkstra.DistanceField
	limiter *rate.Limiter

	lastSources []int
	pending     bool
	valid       bool
	rebuilds    int
}

// New returns an empty cache over a width×height map.
// Dimension and depth errors come from dijkstra.NewEmpty.
func New(width, height int, maxDepth float64, opts ...Option) (*Cache, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	field, err := dijkstra.NewEmpty(width, height, maxDepth, o.FieldOptions...)
	if err != nil {
		return nil, err
	}

	return &Cache{
		options: o,
		field:   field,
		limiter: rate.NewLimiter(o.Limit, o.Burst),
		pending: true,
	}, nil
}

// Update brings the field up to date with sources over m.
// It reports whether a rebuild happened. On a build error the cache is left
// invalid, so the next Update retries unthrottled.
func (c *Cache) Update(sources []int, m core.BaseMap) (bool, error) {
	if m == nil {
		return false, ErrNilMap
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.moved(sources) {
		c.pending = true
	}
	if !c.pending {
		return false, nil
	}
	if c.valid && !c.limiter.Allow() {
		return false, nil
	}

	c.field.Clear()
	if err := c.field.Build(sources, m); err != nil {
		c.valid = false
		return false, fmt.Errorf("flowcache: rebuild: %w", err)
	}

	c.lastSources = append(c.lastSources[:0], sources...)
	c.pending = false
	c.valid = true
	c.rebuilds++
	c.options.Logger.Debug("flowcache: rebuilt",
		"sources", len(sources),
		"rebuilds", c.rebuilds,
	)

	return true, nil
}

// moved reports whether sources differ from the last built set by at least
// DirtyDistance on any position. A change in count always counts.
func (c *Cache) moved(sources []int) bool {
	if len(sources) != len(c.lastSources) {
		return true
	}
	w := c.field.Width()
	for i, s := range sources {
		prev := c.lastSources[i]
		if s == prev {
			continue
		}
		a := geometry.Point{X: s % w, Y: s / w}
		b := geometry.Point{X: prev % w, Y: prev / w}
		if geometry.Distance2D(geometry.Manhattan, a, b) >= float64(c.options.DirtyDistance) {
			return true
		}
	}

	return false
}

// MarkDirty forces the next permitted Update to rebuild, e.g. after the map
// itself changed.
func (c *Cache) MarkDirty() {
	c.mu.Lock()
	c.pending = true
	c.mu.Unlock()
}

// Resize replaces the field with an empty width×height one. The next Update
// rebuilds unthrottled.
func (c *Cache) Resize(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if width == c.field.Width() && height == c.field.Height() {
		return nil
	}
	field, err := dijkstra.NewEmpty(width, height, c.field.MaxDepth(), c.options.FieldOptions...)
	if err != nil {
		return err
	}
	c.field = field
	c.lastSources = c.lastSources[:0]
	c.pending = true
	c.valid = false

	return nil
}

// Valid reports whether at least one build has succeeded since creation or
// the last Resize.
func (c *Cache) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid
}

// Pending reports whether a rebuild is owed.
func (c *Cache) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Rebuilds returns how many builds have completed.
func (c *Cache) Rebuilds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rebuilds
}

// Field returns the underlying distance field. The pointer is only stable
// until the next Resize, and reading it races with a concurrent Update.
func (c *Cache) Field() *dijkstra.DistanceField {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field
}

// Value returns the cached cost at idx.
func (c *Cache) Value(idx int) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field.Value(idx)
}

// BestExitToward is DistanceField.BestExitToward under the cache lock.
func (c *Cache) BestExitToward(cell int, m core.BaseMap) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field.BestExitToward(cell, m)
}

// BestExitAway is DistanceField.BestExitAway under the cache lock.
func (c *Cache) BestExitAway(cell int, m core.BaseMap) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field.BestExitAway(cell, m)
}
