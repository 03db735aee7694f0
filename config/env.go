package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every variable read by ApplyEnv.
const EnvPrefix = "LVKNAP_"

// LoadEnvFile loads KEY=VALUE pairs from the given files (".env" when none)
// into the process environment without overriding variables already set.
// Missing files are ignored.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("config: env file %s: %w", p, err)
		}
	}

	return nil
}

// ApplyEnv overrides cfg fields from LVKNAP_* variables that are set.
func ApplyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, key, v)
		}
		*dst = n

		return nil
	}
	boolean := func(key string, dst *bool) error {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, key, v)
		}
		*dst = b

		return nil
	}

	str("BALANCE", &cfg.Balance)
	str("DATA_DIR", &cfg.DataDir)
	str("FILE", &cfg.File)
	str("ALGORITHM", &cfg.Algorithm)
	str("HISTORY", &cfg.HistoryPath)
	str("PLOT", &cfg.PlotPath)
	str("METRICS", &cfg.MetricsPath)
	str("LOG_LEVEL", &cfg.Log.Level)

	for key, dst := range map[string]*int{
		"DATASET":    &cfg.Dataset,
		"MEMO_SIZE":  &cfg.MemoSize,
		"SWEEP_FROM": &cfg.Sweep.From,
		"SWEEP_TO":   &cfg.Sweep.To,
		"SWEEP_STEP": &cfg.Sweep.Step,
		"SWEEP_MIN":  &cfg.Sweep.Min,
	} {
		if err := integer(key, dst); err != nil {
			return err
		}
	}
	for key, dst := range map[string]*bool{
		"CURVES":          &cfg.Curves,
		"COMPARE":         &cfg.Compare,
		"VERIFY":          &cfg.Verify,
		"LOG_DEVELOPMENT": &cfg.Log.Development,
	} {
		if err := boolean(key, dst); err != nil {
			return err
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SWEEP_MAX_DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sSWEEP_MAX_DURATION=%q", ErrInvalidConfig, EnvPrefix, v)
		}
		cfg.Sweep.MaxDuration = d
	}

	return nil
}
