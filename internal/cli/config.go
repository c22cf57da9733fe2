package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	// defaultInput is the puzzle input file read when none is configured.
	defaultInput = "input.txt"

	// defaultBudget is the bounded-policy attempt budget for real inputs.
	defaultBudget = 1000

	// exampleBudget and exampleSize reproduce the puzzle convention: the
	// 20-point example uses a budget of 10.
	exampleBudget = 10
	exampleSize   = 20
)

// Config is the on-disk TOML configuration. Every field is optional;
// command-line flags that are explicitly set take precedence.
//
//	input   = "input.txt"
//	budget  = 1000
//	workers = 8
//	verbose = true
type Config struct {
	Input   string `toml:"input"`
	Budget  *int   `toml:"budget"`
	Workers int    `toml:"workers"`
	Verbose bool   `toml:"verbose"`
}

// loadConfig decodes the TOML file at path. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func loadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// resolveBudget picks the attempt budget: an explicit value wins, otherwise the
// 20-point example gets exampleBudget and everything else defaultBudget.
func resolveBudget(explicit *int, points int) int {
	if explicit != nil {
		return *explicit
	}
	if points == exampleSize {
		return exampleBudget
	}
	return defaultBudget
}
