package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvknap/knapsack"
)

// ErrInvalidConfig is wrapped by every error from Validate and ApplyEnv.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Sweep mirrors bench.SweepOptions.
type Sweep struct {
	From        int           `yaml:"from"`
	To          int           `yaml:"to"`
	Step        int           `yaml:"step"`
	Min         int           `yaml:"min"`
	MaxDuration time.Duration `yaml:"max_duration"`
}

// Log selects the zap preset and level.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config is the full run configuration.
type Config struct {
	// Balance is the budget as a decimal string.
	Balance string `yaml:"balance"`

	// Dataset is the dataset number used with DataDir when File is empty.
	Dataset int    `yaml:"dataset"`
	DataDir string `yaml:"data_dir"`
	File    string `yaml:"file"`

	// Algorithm accepts a selector number or name (see knapsack.ParseAlgorithm).
	Algorithm string `yaml:"algorithm"`

	Curves  bool  `yaml:"curves"`
	Compare bool  `yaml:"compare"`
	Sweep   Sweep `yaml:"sweep"`

	MemoSize int  `yaml:"memo_size"`
	Verify   bool `yaml:"verify"`

	HistoryPath string `yaml:"history_path"`
	PlotPath    string `yaml:"plot_path"`
	MetricsPath string `yaml:"metrics_path"`

	Log Log `yaml:"log"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Balance:   "500",
		Dataset:   0,
		DataDir:   "dataset",
		Algorithm: "0",
		Sweep: Sweep{
			From:        0,
			To:          1000,
			Step:        10,
			Min:         2,
			MaxDuration: 5 * time.Second,
		},
		Verify:   true,
		PlotPath: "curve.png",
		Log:      Log{Level: "info"},
	}
}

// Load reads a YAML file over Default(). An empty path or a missing file
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Budget parses Balance.
func (c Config) Budget() (decimal.Decimal, error) {
	b, err := decimal.NewFromString(strings.TrimSpace(c.Balance))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: balance %q", ErrInvalidConfig, c.Balance)
	}

	return b, nil
}

// Algo parses Algorithm.
func (c Config) Algo() (knapsack.Algorithm, error) {
	return knapsack.ParseAlgorithm(c.Algorithm)
}

// Options builds the knapsack options for c (Algo, MemoSize, Verify).
func (c Config) Options() (knapsack.Options, error) {
	a, err := c.Algo()
	if err != nil {
		return knapsack.Options{}, err
	}

	return knapsack.NewOptions(
		knapsack.WithAlgorithm(a),
		knapsack.WithMemoSize(c.MemoSize),
		knapsack.WithVerify(c.Verify),
	), nil
}

// Validate checks every field. An unknown algorithm also matches
// knapsack.ErrUnsupportedAlgorithm.
func (c Config) Validate() error {
	b, err := c.Budget()
	if err != nil {
		return err
	}
	if b.IsNegative() {
		return fmt.Errorf("%w: balance %s is negative", ErrInvalidConfig, b)
	}
	if c.Dataset < 0 {
		return fmt.Errorf("%w: dataset %d", ErrInvalidConfig, c.Dataset)
	}
	if _, err := c.Algo(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MemoSize < 0 {
		return fmt.Errorf("%w: memo_size %d", ErrInvalidConfig, c.MemoSize)
	}
	s := c.Sweep
	if s.Step <= 0 || s.From < 0 || s.Min < 0 || s.To < s.From || s.MaxDuration < 0 {
		return fmt.Errorf("%w: sweep %+v", ErrInvalidConfig, s)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}

// Logger builds a zap logger from c.Log: the development preset when
// Development is set, the production preset otherwise.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
