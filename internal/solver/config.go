package solver

// Defaults for the search caps. Empirical, not principled: the exact
// limit keeps the 4^R configuration space enumerable in interactive
// time, and the expansion cap bounds worst-case hint latency.
const (
	DefaultExactTileLimit = 12
	DefaultExpansionCap   = 50_000
	DefaultDepthCap       = 15
)

// Config holds the tunable search caps. Zero values are replaced by the
// defaults above.
type Config struct {
	// ExactTileLimit is the rotatable-tile count at or below which the
	// exact best-first search runs. Above it the heuristic path runs.
	ExactTileLimit int

	// ExpansionCap bounds configurations expanded by the exact search
	// and connectivity probes spent by the heuristic search.
	ExpansionCap int

	// DepthCap bounds the iterative-deepening stage in taps. The
	// effective cap is min(DepthCap, move budget) when a budget is set.
	DepthCap int
}

// Option configures a solve call.
type Option func(*Config)

// WithExactTileLimit overrides the exact/heuristic switchover point.
func WithExactTileLimit(n int) Option {
	return func(c *Config) { c.ExactTileLimit = n }
}

// WithExpansionCap overrides the search expansion cap.
func WithExpansionCap(n int) Option {
	return func(c *Config) { c.ExpansionCap = n }
}

// WithDepthCap overrides the iterative-deepening depth cap.
func WithDepthCap(n int) Option {
	return func(c *Config) { c.DepthCap = n }
}

func buildConfig(opts []Option) Config {
	cfg := Config{
		ExactTileLimit: DefaultExactTileLimit,
		ExpansionCap:   DefaultExpansionCap,
		DepthCap:       DefaultDepthCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
