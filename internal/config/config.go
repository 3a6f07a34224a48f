// Package config loads the kosmos CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/on-the-ground/kosmos/laws"
	"github.com/on-the-ground/kosmos/memo"
	"github.com/on-the-ground/kosmos/recurrence"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file read when no path is given and it exists.
const DefaultPath = ".kosmos.yaml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the CLI configuration. Zero sample, shrink and worker counts
// mean the law engine defaults.
type Config struct {
	Samples     int    `yaml:"samples"`
	Seed        int64  `yaml:"seed"`
	MaxShrinks  int    `yaml:"max_shrinks"`
	Workers     int    `yaml:"workers"`
	LogLevel    string `yaml:"log_level"`
	DepthBudget int    `yaml:"depth_budget"`
	// Cache selects the memo table: "map", "rotating" or "ristretto".
	// Bounded tables hold at most CacheSize entries.
	Cache     string `yaml:"cache"`
	CacheSize int    `yaml:"cache_size"`
	NoColor   bool   `yaml:"no_color"`
}

const (
	CacheMap       = "map"
	CacheRotating  = "rotating"
	CacheRistretto = "ristretto"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Samples:     100,
		LogLevel:    "warn",
		DepthBudget: recurrence.DefaultDepthBudget,
		Cache:       CacheMap,
		CacheSize:   1 << 16,
	}
}

// Load reads path over Default. An empty path reads DefaultPath if it
// exists and returns Default otherwise.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			return cfg, nil
		}
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Write stores cfg at path, creating the directory if needed.
func Write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var err error
	if c.Samples < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: samples %d is negative", ErrInvalid, c.Samples))
	}
	if c.MaxShrinks < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: max_shrinks %d is negative", ErrInvalid, c.MaxShrinks))
	}
	if c.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: workers %d is negative", ErrInvalid, c.Workers))
	}
	if c.DepthBudget < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: depth_budget %d must be positive", ErrInvalid, c.DepthBudget))
	}
	switch c.Cache {
	case CacheMap:
	case CacheRotating, CacheRistretto:
		if c.CacheSize < 1 {
			err = multierr.Append(err, fmt.Errorf("%w: cache_size %d must be positive for %s", ErrInvalid, c.CacheSize, c.Cache))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("%w: unknown cache %q", ErrInvalid, c.Cache))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: log_level: %v", ErrInvalid, lerr))
	}
	return err
}

// LawOptions returns the law check options for c.
func (c Config) LawOptions(logger *zap.Logger) []laws.Option {
	return []laws.Option{
		laws.WithSamples(c.Samples),
		laws.WithSeed(c.Seed),
		laws.WithMaxShrinks(c.MaxShrinks),
		laws.WithWorkers(c.Workers),
		laws.WithLogger(logger),
	}
}

// RecurrenceOptions returns the recurrence options for c, including fresh
// memo tables of the configured kind. The caller must call closeTables once
// the recurrences built from opts are no longer used.
func (c Config) RecurrenceOptions(logger *zap.Logger) (opts []recurrence.Option[*big.Int], closeTables func(), err error) {
	opts = []recurrence.Option[*big.Int]{
		recurrence.WithDepthBudget[*big.Int](c.DepthBudget),
		recurrence.WithLogger[*big.Int](logger),
	}
	closeTables = func() {}
	switch c.Cache {
	case CacheRotating:
		size := uint32(c.CacheSize)
		opts = append(opts,
			recurrence.WithSequenceTable[*big.Int](memo.NewRotatingTable[int, *big.Int](size)),
			recurrence.WithLatticeTable[*big.Int](memo.NewRotatingTable[memo.Pair, *big.Int](size)),
		)
	case CacheRistretto:
		seq, err := memo.NewRistrettoTable[int, *big.Int](int64(c.CacheSize), memo.HashInt)
		if err != nil {
			return nil, nil, err
		}
		lat, err := memo.NewRistrettoTable[memo.Pair, *big.Int](int64(c.CacheSize), memo.HashPair)
		if err != nil {
			seq.Close()
			return nil, nil, err
		}
		opts = append(opts, recurrence.WithSequenceTable[*big.Int](seq), recurrence.WithLatticeTable[*big.Int](lat))
		closeTables = func() {
			seq.Close()
			lat.Close()
		}
	}
	return opts, closeTables, nil
}
