package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/kosmos/internal/config"
	"github.com/on-the-ground/kosmos/laws"
	"github.com/on-the-ground/kosmos/sequences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kosmos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "samples: 250\nseed: 42\nlog_level: debug\ncache: rotating\ncache_size: 64\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Samples)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.CacheRotating, cfg.Cache)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, config.Default().DepthBudget, cfg.DepthBudget)
}

func TestLoad_MissingDefaultFileIsDefault(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "samples: [1, 2"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "samples: -1\ndepth_budget: 0\nlog_level: loud\ncache: lru\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestValidate_BoundedCacheNeedsSize(t *testing.T) {
	cfg := config.Default()
	cfg.Cache, cfg.CacheSize = config.CacheRistretto, 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kosmos.yaml")
	want := config.Default()
	want.Samples, want.NoColor = 500, true

	require.NoError(t, config.Write(path, want))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLawOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Samples, cfg.Seed = 300, 8
	lc := laws.NewConfig(cfg.LawOptions(zap.NewNop())...)
	assert.Equal(t, 300, lc.Samples)
	assert.Equal(t, int64(8), lc.Seed)
}

func TestRecurrenceOptions_EveryCache(t *testing.T) {
	for _, cache := range []string{config.CacheMap, config.CacheRotating, config.CacheRistretto} {
		t.Run(cache, func(t *testing.T) {
			cfg := config.Default()
			cfg.Cache, cfg.CacheSize, cfg.DepthBudget = cache, 128, 16
			opts, closeTables, err := cfg.RecurrenceOptions(zap.NewNop())
			require.NoError(t, err)
			require.NotNil(t, closeTables)

			v, err := sequences.Fibonacci(opts...).Value(300)
			require.NoError(t, err)
			assert.Equal(t, "222232244629420445529739893461909967206666939096499764990979600", v.String())

			closeTables()

			opts, closeTables, err = cfg.RecurrenceOptions(zap.NewNop())
			require.NoError(t, err)
			defer closeTables()
			c, err := sequences.Binomial(opts...).Value(40, 20)
			require.NoError(t, err)
			assert.Equal(t, "137846528820", c.String())
		})
	}
}
