/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/stackedboxes/tinylox/pkg/vm"
)

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Compiles and runs a tinylox source file",
	Long: heredoc.Doc(`
		Compiles and runs a tinylox source file. Exits 0 on success, 65
		if compilation fails, 70 if a runtime error happens while
		executing.`),
	Args: cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		runFile(args[0])
	},
}

// runFile compiles and runs the source at path, reporting any error and
// exiting with the corresponding status code.
func runFile(path string) {
	source := readSourceFileExitingOnError(path)

	theVM := vm.New(os.Stdout)
	theVM.DebugTraceExecution = flagTrace || cfg.Trace
	err := theVM.Interpret(source)
	reportAndExitOnError(err)
}
