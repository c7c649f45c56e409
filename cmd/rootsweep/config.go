package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// sweepConfig holds every rootsweep setting. Values come from, in rising
// priority, the defaults below, a YAML/JSON/TOML file given by -config,
// ROOTSWEEP_* environment variables and flags set on the command line.
type sweepConfig struct {
	From   uint64 `mapstructure:"from"`
	To     uint64 `mapstructure:"to"`
	Degree int    `mapstructure:"degree"`
	Trials int    `mapstructure:"trials"`
	Seed   uint64 `mapstructure:"seed"`
	Monic  bool   `mapstructure:"monic"`
	Out    string `mapstructure:"out"`
	HTML   string `mapstructure:"html"`
	Cache  string `mapstructure:"cache"`
}

var defaults = sweepConfig{
	From:   2,
	To:     200,
	Degree: 3,
	Trials: 1000,
	Seed:   1,
	Out:    "rootsweep.jsonl",
	HTML:   "rootsweep.html",
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("rootsweep", flag.ContinueOnError)
	fs.String("config", "", "config file (yaml, json or toml)")
	fs.Uint64("from", defaults.From, "smallest modulus to consider")
	fs.Uint64("to", defaults.To, "largest modulus to consider")
	fs.Int("degree", defaults.Degree, "degree of the sampled polynomials")
	fs.Int("trials", defaults.Trials, "polynomials sampled per prime")
	fs.Uint64("seed", defaults.Seed, "sampling seed")
	fs.Bool("monic", defaults.Monic, "sample monic polynomials")
	fs.String("out", defaults.Out, "JSONL output (empty to skip)")
	fs.String("html", defaults.HTML, "HTML chart output (empty to skip)")
	fs.String("cache", defaults.Cache, "bolt file caching finished primes (empty to disable)")
	return fs
}

// loadConfig parses args and merges them over the config file and the
// environment.
func loadConfig(args []string) (sweepConfig, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return sweepConfig{}, err
	}

	v := viper.New()
	v.SetDefault("from", defaults.From)
	v.SetDefault("to", defaults.To)
	v.SetDefault("degree", defaults.Degree)
	v.SetDefault("trials", defaults.Trials)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("monic", defaults.Monic)
	v.SetDefault("out", defaults.Out)
	v.SetDefault("html", defaults.HTML)
	v.SetDefault("cache", defaults.Cache)
	v.SetEnvPrefix("rootsweep")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := fs.Lookup("config").Value.String(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return sweepConfig{}, fmt.Errorf("read config: %w", err)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			v.Set(f.Name, f.Value.String())
		}
	})

	var c sweepConfig
	if err := v.Unmarshal(&c); err != nil {
		return sweepConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return c, c.validate()
}

func (c sweepConfig) validate() error {
	switch {
	case c.From > c.To:
		return fmt.Errorf("from %d is above to %d", c.From, c.To)
	case c.To > maxSweepModulus:
		return fmt.Errorf("to %d exceeds %d", c.To, uint64(maxSweepModulus))
	case c.Degree < 0:
		return fmt.Errorf("negative degree %d", c.Degree)
	case c.Trials <= 0:
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	return nil
}

func (c sweepConfig) opts() sweepOpts {
	return sweepOpts{degree: c.Degree, trials: c.Trials, seed: c.Seed, monic: c.Monic}
}
