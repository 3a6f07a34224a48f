package laws

import (
	"time"

	"github.com/leanovate/gopter"
	"go.uber.org/zap"
)

// Config controls a check.
type Config struct {
	// Samples is the number of passing samples required. Zero means the
	// property engine default of 100.
	Samples int
	// Seed makes a check reproducible. Zero picks a time-derived seed; the
	// seed used is reported on every Outcome.
	Seed int64
	// MaxShrinks bounds the shrinking of a counterexample. Zero means the
	// engine default.
	MaxShrinks int
	// Workers is the number of goroutines drawing samples.
	Workers int
	Logger  *zap.Logger
}

// Option adjusts a Config.
type Option func(*Config)

// DefaultConfig returns the engine defaults with a no-op logger.
func DefaultConfig() Config {
	defaults := gopter.DefaultTestParameters()
	return Config{
		Samples:    defaults.MinSuccessfulTests,
		MaxShrinks: defaults.MaxShrinkCount,
		Workers:    1,
		Logger:     zap.NewNop(),
	}
}

// NewConfig applies opts to DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.normalized()
}

// WithSamples sets the number of passing samples each law needs.
// Non-positive values keep the default.
func WithSamples(n int) Option { return func(c *Config) { c.Samples = n } }

// WithSeed fixes the random seed. Zero picks a time-derived seed.
func WithSeed(seed int64) Option { return func(c *Config) { c.Seed = seed } }

// WithMaxShrinks bounds the shrink steps spent on a counterexample.
func WithMaxShrinks(n int) Option { return func(c *Config) { c.MaxShrinks = n } }

// WithWorkers sets how many goroutines draw samples for one law.
func WithWorkers(n int) Option { return func(c *Config) { c.Workers = n } }

// WithLogger sets the logger for suite runs. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// normalized replaces unset or non-positive fields by defaults.
func (c Config) normalized() Config {
	defaults := DefaultConfig()
	if c.Samples <= 0 {
		c.Samples = defaults.Samples
	}
	if c.MaxShrinks <= 0 {
		c.MaxShrinks = defaults.MaxShrinks
	}
	if c.Workers <= 0 {
		c.Workers = defaults.Workers
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

func (c Config) parameters() *gopter.TestParameters {
	params := gopter.DefaultTestParametersWithSeed(c.Seed)
	params.MinSuccessfulTests = c.Samples
	params.MaxShrinkCount = c.MaxShrinks
	params.Workers = c.Workers
	return params
}
