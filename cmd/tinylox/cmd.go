/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stackedboxes/tinylox/pkg/config"
	"github.com/stackedboxes/tinylox/pkg/errs"
)

// flagTrace is the value of the global --trace flag.
var flagTrace bool

// cfg holds the settings loaded from .tinylox.toml (or config.Default(), if
// no such file exists), merged with flagTrace in setUpLogging.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "tinylox [path]",
	SilenceUsage: true,
	Short:        "tinylox is a small stack-based bytecode scripting language",
	Long: heredoc.Doc(`
		tinylox compiles and runs scripts in a small, dynamically-typed
		arithmetic scripting language, using a single-pass bytecode
		compiler and a stack-based virtual machine.

		Running it with a path compiles and runs that file. Running it
		with no arguments starts an interactive REPL.`),
	Args: cobra.MaximumNArgs(1),

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setUpLogging()
	},

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			runREPL()
			return
		}
		runFile(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false,
		"log a disassembly of every instruction as it executes")

	devCmd.AddCommand(devDisassembleCmd, devScanCmd, devGoldenCmd)
	rootCmd.AddCommand(runCmd, replCmd, devCmd, versionCmd)

	var err errs.Error
	cfg, err = config.Load(config.FileName)
	if err != nil {
		reportAndExit(err)
	}
}

// setUpLogging raises logrus to DebugLevel when tracing is requested, either
// via --trace or via .tinylox.toml's trace setting.
func setUpLogging() {
	if flagTrace || cfg.Trace {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
