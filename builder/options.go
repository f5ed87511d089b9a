package builder

import (
	"math/rand"
)

const (
	defaultMinCost = 1
	defaultMaxCost = 9
)

// builderConfig is resolved once per Build call and shared by all constructors.
type builderConfig struct {
	// RNG for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
	// Inclusive range for Terrain costs.
	minCost, maxCost int
}

// Option customizes a Build call.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostRange sets the inclusive range Terrain draws cell costs from.
// Panics if lo < 1 (a cost below 1 would read as a wall) or hi < lo.
func WithCostRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic("builder: WithCostRange requires 1 <= lo <= hi")
	}
	return func(c *builderConfig) {
		c.minCost, c.maxCost = lo, hi
	}
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		minCost: defaultMinCost,
		maxCost: defaultMaxCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
