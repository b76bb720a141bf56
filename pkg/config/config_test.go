/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GoldenTestsDir != "testdata" {
		t.Errorf("GoldenTestsDir = %q, want %q", cfg.GoldenTestsDir, "testdata")
	}
	if cfg.Trace {
		t.Error("Trace should default to false")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tinylox.toml")
	contents := "Trace = true\ngolden_tests_dir = \"fixtures\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Trace {
		t.Error("Trace should be true")
	}
	if cfg.GoldenTestsDir != "fixtures" {
		t.Errorf("GoldenTestsDir = %q, want %q", cfg.GoldenTestsDir, "fixtures")
	}
}

func TestLoadInvalidTomlReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tinylox.toml")
	if err := os.WriteFile(path, []byte("not valid toml [[["), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for invalid TOML")
	}
}
