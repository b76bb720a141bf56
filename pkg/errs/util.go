/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"errors"
	"fmt"
	"os"
)

// ReportAndExit reports the error err to the end user and exits with the
// appropriate status code. It's fine if err is nil, we handle this case here.
func ReportAndExit(err error) {
	var badUsageError *BadUsage
	var toolError *ToolError
	var compTimeError *CompileTime
	var compTimeColl *CompileTimeCollection
	var runtimeError *Runtime
	var iceErr *ICE

	switch {
	case err == nil:
		os.Exit(StatusCodeSuccess)

	case errors.As(err, &badUsageError):
		fmt.Fprintf(os.Stderr, "%v\n", badUsageError)
		os.Exit(StatusCodeBadUsage)

	case errors.As(err, &toolError):
		fmt.Fprintf(os.Stderr, "%v\n", toolError)
		os.Exit(StatusCodeToolError)

	case errors.As(err, &compTimeColl):
		fmt.Fprintf(os.Stderr, "%v\n", compTimeColl)
		os.Exit(StatusCodeCompileTimeError)

	case errors.As(err, &compTimeError):
		fmt.Fprintf(os.Stderr, "%v\n", compTimeError)
		os.Exit(StatusCodeCompileTimeError)

	case errors.As(err, &runtimeError):
		fmt.Fprintf(os.Stderr, "%v\n", runtimeError)
		os.Exit(StatusCodeRuntimeError)

	case errors.As(err, &iceErr):
		fmt.Fprintf(os.Stderr, "%v\n", iceErr)
		os.Exit(StatusCodeICE)

	default:
		fmt.Fprintf(os.Stderr, "Internal Error: unexpected error of type %T: %v\n", err, err)
		os.Exit(StatusCodeICE)
	}
}
