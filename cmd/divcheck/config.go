// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/xyproto/env/v2"
)

// Config controls a divcheck run.
type Config struct {
	Types      []string `toml:"types"`
	Iterations int      `toml:"iterations"`
	MaxLength  int      `toml:"max-length"`
	Seed       uint64   `toml:"seed"`
	Workers    int      `toml:"workers"`
	Verbose    bool     `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Types:      []string{"all"},
		Iterations: 200,
		MaxLength:  257,
		Seed:       1,
	}
}

// loadConfig resolves the configuration. Later sources win: defaults,
// environment, the TOML file at path (if any), then flags the user set.
//
// env/v2 caches the environment on its first read, which happens in hwy's
// init, so the cache is reloaded here to see the current environment.
func loadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	env.Load()
	cfg := defaultConfig()
	cfg.Seed = env.UInt64("DIVCHECK_SEED", cfg.Seed)
	cfg.Iterations = env.Int("DIVCHECK_ITERATIONS", cfg.Iterations)

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if flags != nil {
		var err error
		if flags.Changed("types") {
			if cfg.Types, err = flags.GetStringSlice("types"); err != nil {
				return cfg, err
			}
		}
		if flags.Changed("iterations") {
			if cfg.Iterations, err = flags.GetInt("iterations"); err != nil {
				return cfg, err
			}
		}
		if flags.Changed("max-length") {
			if cfg.MaxLength, err = flags.GetInt("max-length"); err != nil {
				return cfg, err
			}
		}
		if flags.Changed("seed") {
			if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
				return cfg, err
			}
		}
		if flags.Changed("workers") {
			if cfg.Workers, err = flags.GetInt("workers"); err != nil {
				return cfg, err
			}
		}
		if flags.Changed("verbose") {
			if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
				return cfg, err
			}
		}
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.Iterations)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("max-length must be non-negative, got %d", c.MaxLength)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	_, err := parseTypes(c.Types)
	return err
}

// parseTypes normalizes a list of element type names. "all" expands to
// every supported type; duplicates are dropped keeping first occurrence.
func parseTypes(names []string) ([]string, error) {
	parts := lo.FlatMap(names, func(s string, _ int) []string {
		return strings.Split(s, ",")
	})
	parts = lo.Map(parts, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	parts = lo.Filter(parts, func(s string, _ int) bool { return s != "" })
	if lo.Contains(parts, "all") {
		return typeNames(), nil
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no element types given")
	}
	if unknown := lo.Filter(parts, func(s string, _ int) bool {
		_, ok := checks[s]
		return !ok
	}); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown element types %s (want one of %s)",
			strings.Join(unknown, ", "), strings.Join(typeNames(), ", "))
	}
	return lo.Uniq(parts), nil
}
