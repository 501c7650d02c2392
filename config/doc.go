// Package config layers the CLI settings: built-in defaults, an optional
// config file (YAML, TOML or JSON), CIRCLEPOINTS_* environment variables and
// finally command-line flags, each overriding the one before.
//
// Keys are the flag names (center-x, radius, formats, ...):
//
//	v := config.New()
//	if err := config.ReadFile(v, *configPath); err != nil {
//	    log.Fatal(err)
//	}
//	v.Set(config.KeyRadius, 25) // an explicitly set flag
//	cfg, err := config.Decode(v)
//	spec, err := cfg.Spec()
package config
