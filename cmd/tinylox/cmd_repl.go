/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/stackedboxes/tinylox/pkg/errs"
	"github.com/stackedboxes/tinylox/pkg/vm"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts an interactive tinylox prompt",
	Long: heredoc.Doc(`
		Starts an interactive prompt: each line is compiled and run on
		its own, with history persisted across sessions.`),
	Args: cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		runREPL()
	},
}

// historyPath returns where REPL history is persisted. Falls back to no
// persistence (empty path) if the home directory can't be found.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tinylox_history")
}

// runREPL reads lines from stdin, one at a time, compiling and running each
// independently on the same VM, whose stack is reset at the start of every
// run.
func runREPL() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyPath(),
	})
	if err != nil {
		reportAndExit(errs.NewToolError("starting REPL: %v", err))
		return
	}
	defer rl.Close()

	theVM := vm.New(os.Stdout)
	theVM.DebugTraceExecution = flagTrace || cfg.Trace

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}

		if line == "" {
			continue
		}

		if runErr := theVM.Interpret(line); runErr != nil {
			fmt.Fprintln(os.Stderr, runErr)
		}
	}
}
