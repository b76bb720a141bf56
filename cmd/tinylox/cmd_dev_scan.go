/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/stackedboxes/tinylox/pkg/frontend"
)

var devScanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Scans a source file and prints the resulting token stream",
	Long: heredoc.Doc(`
		Scans a tinylox source file and prints one line per token
		found, in the form KIND 'LEXEME' (line N).`),
	Args: cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		source := readSourceFileExitingOnError(args[0])

		scanner := frontend.NewScanner(source)
		for {
			tok := scanner.Token()
			fmt.Printf("%-22v '%v' (line %v)\n", tok.Kind, tok.Lexeme, tok.Line)
			if tok.Kind == frontend.TokenKindEOF {
				break
			}
		}

		reportAndExit(nil)
	},
}
