// Package config assembles lvknap's run configuration from, in increasing
// precedence: built-in defaults, a YAML file, LVKNAP_* environment variables
// (optionally seeded from a .env file) and command-line flags applied by the
// caller.
//
//	cfg, err := config.Load("lvknap.yaml") // missing file ⇒ Default()
//	_ = config.LoadEnvFile()                // .env is optional
//	err = config.ApplyEnv(&cfg)
//	err = cfg.Validate()
//
// Every validation failure wraps ErrInvalidConfig.
package config
