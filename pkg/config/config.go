/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package config reads tinylox's optional per-project configuration file,
// .tinylox.toml.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/stackedboxes/tinylox/pkg/errs"
)

// FileName is the name tinylox looks for in the current directory.
const FileName = ".tinylox.toml"

// Config holds the settings a .tinylox.toml file can override.
type Config struct {
	// Trace makes every run behave as if --trace had been passed.
	Trace bool

	// GoldenTestsDir is the default directory `tinylox dev golden` walks
	// when no path is given on the command line.
	GoldenTestsDir string `toml:"golden_tests_dir"`
}

// Default returns the configuration tinylox uses when no .tinylox.toml is
// found.
func Default() *Config {
	return &Config{
		GoldenTestsDir: "testdata",
	}
}

// Load reads path and decodes it into a Config, starting from Default()'s
// values. If path doesn't exist, it silently returns Default() -- a missing
// config file is normal, not an error.
func Load(path string) (*Config, errs.Error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errs.NewToolError("reading config file %v: %v", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errs.NewToolError("parsing config file %v: %v", path, err)
	}

	return cfg, nil
}
