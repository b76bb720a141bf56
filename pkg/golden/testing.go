/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package golden

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/coregx/coregex"
	"github.com/pelletier/go-toml/v2"

	"github.com/stackedboxes/tinylox/pkg/errs"
	"github.com/stackedboxes/tinylox/pkg/vm"
)

// caseConfig is the structure mirroring a case.toml file.
type caseConfig struct {
	// Source is the script file to run, relative to the directory holding
	// case.toml. Defaults to "source.tlx".
	Source string

	// Output lists the expected lines of output: those printed by `print`
	// statements and by the final OP_RETURN of a bare expression.
	Output []string

	// ExitCode is the expected process exit code. Zero means success.
	ExitCode int

	// ErrorMessages, when non-empty, are regexes that must each match
	// somewhere in the error reported by the run.
	ErrorMessages []string
}

// canonicalize fills in default values left unset in the TOML file.
func (c *caseConfig) canonicalize() {
	if c.Source == "" {
		c.Source = "source.tlx"
	}
	if c.Output == nil {
		c.Output = []string{}
	}
	if c.ErrorMessages == nil {
		c.ErrorMessages = []string{}
	}
}

// Result reports the outcome of a single golden test case.
type Result struct {
	// CasePath is the directory containing the case.toml that was run.
	CasePath string

	// Passed is true if every expectation in the case was met.
	Passed bool

	// Message explains what went wrong, when Passed is false.
	Message string
}

// RunSuite discovers every case.toml under root and runs each one. It
// returns one Result per case found; a case.toml that can't be read or parsed
// yields a failed Result for that case. Only a problem walking the directory
// tree aborts the whole suite with an error.
func RunSuite(root string) ([]Result, errs.Error) {
	var results []Result

	err := Discover(root, func(caseFile string) errs.Error {
		result := runCase(caseFile)
		results = append(results, result)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// runCase runs the golden test case defined by the case.toml at configPath.
func runCase(configPath string) Result {
	testDir := path.Dir(configPath)

	cfg, err := readCaseConfig(configPath)
	if err != nil {
		return Result{CasePath: testDir, Message: err.Error()}
	}
	cfg.canonicalize()

	sourcePath := path.Join(testDir, cfg.Source)
	source, readErr := os.ReadFile(sourcePath)
	if readErr != nil {
		return Result{CasePath: testDir, Message: fmt.Sprintf("reading source %v: %v", sourcePath, readErr)}
	}

	var out bytes.Buffer
	theVM := vm.New(&out)
	runErr := theVM.Interpret(string(source))

	gotExitCode := errs.StatusCodeSuccess
	if runErr != nil {
		gotExitCode = runErr.ExitCode()
	}
	if gotExitCode != cfg.ExitCode {
		return Result{
			CasePath: testDir,
			Message:  fmt.Sprintf("expected exit code %v, got %v", cfg.ExitCode, gotExitCode),
		}
	}

	for _, pattern := range cfg.ErrorMessages {
		re, compileErr := coregex.Compile(pattern)
		if compileErr != nil {
			return Result{CasePath: testDir, Message: fmt.Sprintf("compiling error pattern %q: %v", pattern, compileErr)}
		}
		errMsg := ""
		if runErr != nil {
			errMsg = runErr.Error()
		}
		if !re.MatchString(errMsg) {
			return Result{
				CasePath: testDir,
				Message:  fmt.Sprintf("expected error matching %q, got %q", pattern, errMsg),
			}
		}
	}

	if runErr != nil {
		return Result{CasePath: testDir, Passed: true}
	}

	gotLines := splitLines(out.String())
	if len(gotLines) != len(cfg.Output) {
		return Result{
			CasePath: testDir,
			Message:  fmt.Sprintf("expected %v lines of output, got %v: %q", len(cfg.Output), len(gotLines), gotLines),
		}
	}
	for i, want := range cfg.Output {
		if gotLines[i] != want {
			return Result{
				CasePath: testDir,
				Message:  fmt.Sprintf("at line %v: expected output %q, got %q", i, want, gotLines[i]),
			}
		}
	}

	return Result{CasePath: testDir, Passed: true}
}

// readCaseConfig reads and decodes a case.toml file.
func readCaseConfig(path string) (*caseConfig, errs.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewToolError("reading %v: %v", path, err)
	}

	cfg := &caseConfig{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errs.NewToolError("parsing %v: %v", path, err)
	}

	return cfg, nil
}

// splitLines splits s on newlines and drops the trailing empty element a
// terminal newline would otherwise leave behind.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
