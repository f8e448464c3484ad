package config

import (
	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/filter"
)

// Config is the full textfilter configuration
type Config struct {
	Filter FilterConfig `koanf:"filter"`
	Rules  RulesConfig  `koanf:"rules"`
	Log    LogConfig    `koanf:"log"`
}

// FilterConfig holds the limits handed to RuleSet.Execute
type FilterConfig struct {
	LengthLimit int    `koanf:"length_limit"`
	ChainBudget int    `koanf:"chain_budget"`
	Mode        string `koanf:"mode"`
}

type RulesConfig struct {
	File string `koanf:"file"`
}

type LogConfig struct {
	File bool `koanf:"file"`
}

// ExecMode returns the configured execution mode. Load has already
// validated it, so an unknown value falls back to prose.
func (f FilterConfig) ExecMode() filter.Mode {
	mode, err := filter.ParseMode(f.Mode)
	if err != nil {
		return filter.Prose
	}
	return mode
}

func (c *Config) validate() error {
	if c.Filter.LengthLimit < 0 {
		return errors.Newf(errors.ErrConfigParse, "filter.length_limit must not be negative, got %d", c.Filter.LengthLimit).
			WithDetail("key", "filter.length_limit")
	}
	if c.Filter.ChainBudget < 0 {
		return errors.Newf(errors.ErrConfigParse, "filter.chain_budget must not be negative, got %d", c.Filter.ChainBudget).
			WithDetail("key", "filter.chain_budget")
	}
	if _, err := filter.ParseMode(c.Filter.Mode); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid filter.mode").
			WithDetail("key", "filter.mode")
	}
	return nil
}
