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

	"github.com/stackedboxes/tinylox/pkg/bytecode"
	"github.com/stackedboxes/tinylox/pkg/compiler"
)

var devDisassembleCmd = &cobra.Command{
	Use:   "disassemble <path>",
	Short: "Compiles a source file and prints its bytecode disassembly",
	Long: heredoc.Doc(`
		Compiles a tinylox source file and prints a human-readable
		disassembly of the resulting bytecode, without running it.`),
	Args: cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		source := readSourceFileExitingOnError(args[0])

		chunk := &bytecode.Chunk{}
		if err := compiler.Compile(source, chunk); err != nil {
			reportAndExit(err)
			return
		}

		bytecode.Disassemble(chunk, os.Stdout, args[0])
		reportAndExit(nil)
	},
}
