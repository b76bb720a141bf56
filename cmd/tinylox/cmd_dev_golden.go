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

	"github.com/stackedboxes/tinylox/pkg/errs"
	"github.com/stackedboxes/tinylox/pkg/golden"
	"github.com/stackedboxes/tinylox/pkg/romutil"
)

var devGoldenCmd = &cobra.Command{
	Use:   "golden [dir]",
	Short: "Run the golden-file test suite",
	Long: heredoc.Doc(`
		Walks a directory tree looking for case.toml files and runs
		each one through the VM, comparing output, exit code and error
		messages against the expectations recorded there. Defaults to
		the directory configured in .tinylox.toml.`),
	Args: cobra.MaximumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		dir := cfg.GoldenTestsDir
		if len(args) == 1 {
			dir = args[0]
		}

		if isDir, statErr := romutil.IsDir(dir); statErr != nil || !isDir {
			reportAndExit(errs.NewToolError("%v is not a directory", dir))
			return
		}

		results, err := golden.RunSuite(dir)
		if err != nil {
			reportAndExit(err)
			return
		}

		failures := 0
		for _, r := range results {
			if r.Passed {
				fmt.Printf("PASS %v\n", r.CasePath)
				continue
			}
			failures++
			fmt.Printf("FAIL %v: %v\n", r.CasePath, r.Message)
		}

		fmt.Printf("%v passed, %v failed\n", len(results)-failures, failures)

		if failures > 0 {
			reportAndExit(errs.NewToolError("%v golden test(s) failed", failures))
			return
		}
		reportAndExit(nil)
	},
}
