package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the shape of sdlcheck.toml, supplying defaults that CLI
// flags override (SPEC_FULL §11.1).
type fileConfig struct {
	RecursionLimit int    `toml:"recursion_limit"`
	Format         string `toml:"format"`
}

// loadConfig reads path if it exists, returning a zero-value fileConfig
// (meaning "no overrides") if it does not. This mirrors the teacher's
// internal/tqw.toml.Unmarshal usage: a straight Unmarshal call over raw
// file bytes, no schema validation beyond what toml itself performs.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
