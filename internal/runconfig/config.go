// Package runconfig resolves one run's configuration — dataset name, k,
// the quasi-identifier set, data/hierarchy directories, verbosity, and
// the NaN-handling toggles — from whatever values the caller has put on
// a viper instance, onto one struct. The CLI's run command sets every key
// from its cobra flags, so environment variables do not override them
// and no config file is read. Adapted from a perf-analysis CLI tool's
// pkg/config package; the
// teacher itself carries no configuration layer at all.
package runconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is one resolved run's full set of parameters.
type Config struct {
	Dataset       string   `mapstructure:"dataset"`
	QuasiIdentifiers []string `mapstructure:"qid"`
	K             int      `mapstructure:"k"`
	DataDir       string   `mapstructure:"data_dir"`
	HierarchyDir  string   `mapstructure:"hierarchy_dir"`
	DropNaN       bool     `mapstructure:"drop_nan"`
	NaNSentinel   string   `mapstructure:"nan_sentinel"`
	Verbose       bool     `mapstructure:"verbose"`
}

// Load resolves a Config from v, filling unset keys with defaults and
// validating the result. The caller fills v beforehand (the run command
// does so with v.Set, one key per flag).
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("runconfig: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runconfig: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("k", 2)
	v.SetDefault("data_dir", "./Data")
	v.SetDefault("hierarchy_dir", "./Data/hierarchies")
	v.SetDefault("drop_nan", false)
	v.SetDefault("nan_sentinel", "?")
	v.SetDefault("verbose", false)
}

// Validate checks the resolved configuration is internally consistent,
// independent of whether the dataset/columns it names actually exist
// (that's search.Run's job — this only catches malformed configuration).
func (c *Config) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("dataset name is required")
	}
	if len(c.QuasiIdentifiers) == 0 {
		return fmt.Errorf("at least one --qid column is required")
	}
	if c.K < 1 {
		return fmt.Errorf("k must be >= 1, got %d", c.K)
	}

	return nil
}
