/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package vm implements tinylox's bytecode virtual machine: a fetch-decode-
// execute loop over a single bytecode.Chunk, with a fixed-size operand
// stack.
package vm

import (
	"io"

	"github.com/stackedboxes/tinylox/pkg/bytecode"
	"github.com/stackedboxes/tinylox/pkg/compiler"
	"github.com/stackedboxes/tinylox/pkg/errs"
)

// VM is a tinylox Virtual Machine.
type VM struct {
	// Set DebugTraceExecution to true to make the VM log a disassembly of
	// every instruction, and the stack contents, as it runs through them.
	DebugTraceExecution bool

	// out is where the VM sends the output of `print` statements.
	out io.Writer

	// chunk is the bytecode currently being executed.
	chunk *bytecode.Chunk

	// ip is the instruction pointer: the index, into chunk.Code, of the next
	// instruction to execute.
	ip int

	// stack is the VM's operand stack.
	stack stack
}

// New returns a new Virtual Machine. out is where the VM sends the output of
// `print` statements.
func New(out io.Writer) *VM {
	return &VM{out: out}
}

// Interpret compiles source and runs the resulting bytecode. Returns nil on
// success. Compile errors and runtime errors are both reported as
// errs.Error; a caller that only cares about the exit code can pass the
// result straight to errs.ReportAndExit.
func (vm *VM) Interpret(source string) (err errs.Error) {
	chunk := &bytecode.Chunk{}

	if compErr := compiler.Compile(source, chunk); compErr != nil {
		return compErr
	}

	return vm.run(chunk)
}

// run executes chunk from the beginning, resetting the VM's stack first.
func (vm *VM) run(chunk *bytecode.Chunk) (err errs.Error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*errs.Runtime); ok {
				err = e
				return
			}
			err = errs.NewICE("unexpected panic: %v", r)
		}
	}()

	vm.chunk = chunk
	vm.ip = 0
	vm.stack.reset()

	return vm.dispatch()
}
