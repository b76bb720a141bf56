/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"os"

	"github.com/stackedboxes/tinylox/pkg/errs"
)

// readSourceFileExitingOnError reads the tinylox source file at path, exiting
// the program with the proper status code if anything goes wrong.
func readSourceFileExitingOnError(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		errs.ReportAndExit(errs.NewToolError("could not read source file %v: %v", path, err))
	}
	return string(data)
}
