/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

//
// The Error interface
//

// Error is a tinylox error.
type Error interface {
	error
	ExitCode() int
}

//
// CompileTime
//

// CompileTime is a single parse error, reported the way errorAt describes in
// the compiler: "[line N] Error<LOCATION>: MSG".
type CompileTime struct {
	// Message contains a user-friendly error message.
	Message string

	// Line contains the line number where the error was detected.
	Line int

	// Lexeme contains the lexeme where the error was detected. Empty for
	// errors that already come with their own message from the scanner (an
	// "error" token), which carry no separate lexeme to quote.
	Lexeme string
}

// Error converts the CompileTime to a string. Fulfills the error interface.
func (e *CompileTime) Error() string {
	at := ""
	switch e.Lexeme {
	case "":
		// Nothing: either no location info, or the message already came
		// from the scanner.
	case "end of file":
		at = " at end"
	default:
		at = fmt.Sprintf(" at '%v'", e.Lexeme)
	}
	return fmt.Sprintf("[line %v] Error%v: %v", e.Line, at, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *CompileTime) ExitCode() int {
	return StatusCodeCompileTimeError
}

//
// CompileTimeCollection
//

// CompileTimeCollection aggregates every CompileTime error found during one
// compile pass, so they can be reported together instead of one at a time.
// It's built on hashicorp/go-multierror rather than a hand-rolled slice, so
// formatting and Unwrap() come for free.
type CompileTimeCollection struct {
	merr *multierror.Error
}

// Add adds err to the collection. A no-op if err is nil.
func (e *CompileTimeCollection) Add(err *CompileTime) {
	if err == nil {
		return
	}
	e.merr = multierror.Append(e.merr, err)
}

// IsEmpty checks if this CompileTimeCollection has no errors in it.
func (e *CompileTimeCollection) IsEmpty() bool {
	return e.merr == nil || len(e.merr.Errors) == 0
}

// Errors returns the individual CompileTime errors in the collection, in the
// order they were added.
func (e *CompileTimeCollection) Errors() []*CompileTime {
	if e.merr == nil {
		return nil
	}
	result := make([]*CompileTime, len(e.merr.Errors))
	for i, err := range e.merr.Errors {
		result[i] = err.(*CompileTime)
	}
	return result
}

// Error converts the CompileTimeCollection to a string, one CompileTime
// error per line. Fulfills the error interface.
func (e *CompileTimeCollection) Error() string {
	if e.merr == nil {
		return ""
	}
	e.merr.ErrorFormat = func(errs []error) string {
		lines := make([]string, len(errs))
		for i, err := range errs {
			lines[i] = err.Error()
		}
		joined := ""
		for i, line := range lines {
			if i > 0 {
				joined += "\n"
			}
			joined += line
		}
		return joined
	}
	return e.merr.Error()
}

// ExitCode fulfills the Error interface.
func (e *CompileTimeCollection) ExitCode() int {
	return StatusCodeCompileTimeError
}

// Unwrap returns the individual errors in the collection, so that errors.Is
// and errors.As can look inside it.
func (e *CompileTimeCollection) Unwrap() []error {
	if e.merr == nil {
		return nil
	}
	return e.merr.Errors
}

//
// ToolError
//

// ToolError is an error that happened while running the tinylox tool itself
// that doesn't fit any of the other error kinds -- opening a source file
// that doesn't exist, say.
type ToolError struct {
	// Message contains a message explaining what went wrong.
	Message string
}

// NewToolError is a handy way to create a ToolError.
func NewToolError(format string, a ...any) *ToolError {
	return &ToolError{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the ToolError to a string. Fulfills the error interface.
func (e *ToolError) Error() string {
	return e.Message
}

// ExitCode fulfills the Error interface.
func (e *ToolError) ExitCode() int {
	return StatusCodeToolError
}

//
// BadUsage
//

// BadUsage is an error that happened because the tinylox tool was invoked
// incorrectly (wrong number of arguments, unknown flag, and so on).
type BadUsage struct {
	// Message contains a message explaining what happened.
	Message string
}

// NewBadUsage is a handy way to create a BadUsage error.
func NewBadUsage(format string, a ...any) *BadUsage {
	return &BadUsage{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the BadUsage to a string. Fulfills the error interface.
func (e *BadUsage) Error() string {
	return "Usage error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *BadUsage) ExitCode() int {
	return StatusCodeBadUsage
}

//
// Runtime
//

// Runtime is an error that happened while running already-compiled
// bytecode: a type mismatch (e.g. negating a boolean) or some other
// operation that can only be checked once the values are known.
type Runtime struct {
	// Message contains a message explaining what happened.
	Message string

	// Line is the source line of the instruction that failed, when known.
	Line int
}

// NewRuntime is a handy way to create a Runtime error at a specific line.
func NewRuntime(line int, format string, a ...any) *Runtime {
	return &Runtime{
		Message: fmt.Sprintf(format, a...),
		Line:    line,
	}
}

// Error converts the Runtime to a string. Fulfills the error interface.
func (e *Runtime) Error() string {
	return fmt.Sprintf("[line %v] Runtime error: %v", e.Line, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *Runtime) ExitCode() int {
	return StatusCodeRuntimeError
}

//
// ICE
//

// ICE is an Internal Compiler Error: something the implementation assumed
// could never happen, happened. Always a bug in tinylox itself, never in the
// program being compiled.
type ICE struct {
	// Message contains some message to contextualize the situation in which
	// the error happened.
	Message string
}

// NewICE is a handy way to create an ICE.
func NewICE(format string, a ...any) *ICE {
	return &ICE{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the ICE to a string. Fulfills the error interface.
func (e *ICE) Error() string {
	return "Internal Error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *ICE) ExitCode() int {
	return StatusCodeICE
}
