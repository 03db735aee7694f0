package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/config"
	"github.com/katalvlaran/lvknap/knapsack"
)

// TestDefault_Valid checks the defaults pass validation.
func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	b, err := cfg.Budget()
	require.NoError(t, err)
	assert.Equal(t, "500", b.String())

	a, err := cfg.Algo()
	require.NoError(t, err)
	assert.Equal(t, knapsack.BruteForceBinary, a)
}

// TestLoad_File overlays YAML on the defaults.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvknap.yaml")
	yml := `
balance: "250.50"
algorithm: greedy-one-pass
memo_size: 128
sweep:
  step: 5
  max_duration: 2s
log:
  level: debug
  development: true
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "250.50", cfg.Balance)
	assert.Equal(t, 128, cfg.MemoSize)
	assert.Equal(t, 5, cfg.Sweep.Step)
	assert.Equal(t, 1000, cfg.Sweep.To)
	assert.Equal(t, 2*time.Second, cfg.Sweep.MaxDuration)
	assert.True(t, cfg.Verify)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, knapsack.GreedyOnePass, opts.Algo)
	assert.Equal(t, 128, opts.MemoSize)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

// TestLoad_Missing falls back to defaults; a broken file is an error.
func TestLoad_Missing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sweep: [1, 2"), 0o600))
	_, err = config.Load(bad)
	require.Error(t, err)
}

// TestValidate_Rejects covers each invalid field.
func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*config.Config){
		"balance text":     func(c *config.Config) { c.Balance = "lots" },
		"negative balance": func(c *config.Config) { c.Balance = "-1" },
		"dataset":          func(c *config.Config) { c.Dataset = -2 },
		"algorithm":        func(c *config.Config) { c.Algorithm = "7" },
		"memo":             func(c *config.Config) { c.MemoSize = -1 },
		"sweep step":       func(c *config.Config) { c.Sweep.Step = 0 },
		"sweep order":      func(c *config.Config) { c.Sweep.From, c.Sweep.To = 10, 5 },
		"log level":        func(c *config.Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	cfg := config.Default()
	cfg.Algorithm = "dynamic"
	require.ErrorIs(t, cfg.Validate(), knapsack.ErrUnsupportedAlgorithm)
}

// TestApplyEnv overrides fields from LVKNAP_* variables.
func TestApplyEnv(t *testing.T) {
	t.Setenv("LVKNAP_BALANCE", "123.45")
	t.Setenv("LVKNAP_ALGORITHM", "4")
	t.Setenv("LVKNAP_DATASET", "2")
	t.Setenv("LVKNAP_VERIFY", "false")
	t.Setenv("LVKNAP_SWEEP_MAX_DURATION", "750ms")

	cfg := config.Default()
	require.NoError(t, config.ApplyEnv(&cfg))
	assert.Equal(t, "123.45", cfg.Balance)
	assert.Equal(t, "4", cfg.Algorithm)
	assert.Equal(t, 2, cfg.Dataset)
	assert.False(t, cfg.Verify)
	assert.Equal(t, 750*time.Millisecond, cfg.Sweep.MaxDuration)
}

// TestApplyEnv_Bad reports unparsable values.
func TestApplyEnv_Bad(t *testing.T) {
	t.Setenv("LVKNAP_MEMO_SIZE", "many")
	cfg := config.Default()
	require.ErrorIs(t, config.ApplyEnv(&cfg), config.ErrInvalidConfig)
}

// TestLoadEnvFile seeds the environment without overriding set variables.
func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LVKNAP_FILE=listing.csv\nLVKNAP_PLOT=set-by-file.png\n"), 0o600))
	t.Setenv("LVKNAP_PLOT", "set-by-env.png")
	t.Setenv("LVKNAP_FILE", "")
	require.NoError(t, os.Unsetenv("LVKNAP_FILE"))

	require.NoError(t, config.LoadEnvFile(path, filepath.Join(dir, "missing.env")))
	t.Cleanup(func() { _ = os.Unsetenv("LVKNAP_FILE") })

	cfg := config.Default()
	require.NoError(t, config.ApplyEnv(&cfg))
	assert.Equal(t, "listing.csv", cfg.File)
	assert.Equal(t, "set-by-env.png", cfg.PlotPath)
}
