/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

// Exit codes follow the sysexits.h convention, not arbitrary small integers:
// scripts embedding tinylox as a subprocess can branch on these values.
const (
	// StatusCodeSuccess indicates a successful execution.
	StatusCodeSuccess = 0

	// StatusCodeBadUsage indicates some user error in the usage of the
	// tinylox tool (e.g., passing the wrong number of arguments, or an
	// unknown command-line flag). Corresponds to EX_USAGE.
	StatusCodeBadUsage = 64

	// StatusCodeCompileTimeError indicates one or more compile-time errors
	// were found in the input. Corresponds to EX_DATAERR.
	StatusCodeCompileTimeError = 65

	// StatusCodeRuntimeError indicates an error raised while executing
	// already-compiled bytecode. Corresponds to EX_SOFTWARE.
	StatusCodeRuntimeError = 70

	// StatusCodeToolError indicates a failure unrelated to the input
	// program itself -- a source file that couldn't be opened, or similar.
	// Corresponds to EX_IOERR.
	StatusCodeToolError = 74

	// StatusCodeICE indicates an Internal Compiler Error.
	StatusCodeICE = 74
)
