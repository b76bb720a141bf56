/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stackedboxes/tinylox/pkg/bytecode"
	"github.com/stackedboxes/tinylox/pkg/errs"
)

// dispatch runs the fetch-decode-execute loop over vm.chunk, starting at
// vm.ip.
func (vm *VM) dispatch() errs.Error {
	for {
		if vm.DebugTraceExecution {
			vm.traceStep()
		}

		instruction := bytecode.OpCode(vm.readByte())

		switch instruction {
		case bytecode.OpConstant:
			vm.stack.push(vm.readConstant())

		case bytecode.OpNil:
			vm.stack.push(bytecode.NilValue)

		case bytecode.OpTrue:
			vm.stack.push(bytecode.BoolValue(true))

		case bytecode.OpFalse:
			vm.stack.push(bytecode.BoolValue(false))

		case bytecode.OpPop:
			vm.stack.pop()

		case bytecode.OpEqual:
			b := vm.stack.pop()
			a := vm.stack.pop()
			vm.stack.push(bytecode.BoolValue(bytecode.ValuesEqual(a, b)))

		case bytecode.OpGreater:
			if err := vm.binaryCompare(func(a, b float64) bool { return a > b }); err != nil {
				return err
			}

		case bytecode.OpLess:
			if err := vm.binaryCompare(func(a, b float64) bool { return a < b }); err != nil {
				return err
			}

		case bytecode.OpAdd:
			if err := vm.binaryNumeric(func(a, b float64) float64 { return a + b }); err != nil {
				return err
			}

		case bytecode.OpSubtract:
			if err := vm.binaryNumeric(func(a, b float64) float64 { return a - b }); err != nil {
				return err
			}

		case bytecode.OpMultiply:
			if err := vm.binaryNumeric(func(a, b float64) float64 { return a * b }); err != nil {
				return err
			}

		case bytecode.OpDivide:
			if err := vm.binaryNumeric(func(a, b float64) float64 { return a / b }); err != nil {
				return err
			}

		case bytecode.OpNot:
			v := vm.stack.pop()
			vm.stack.push(bytecode.BoolValue(v.IsFalsey()))

		case bytecode.OpNegate:
			if !vm.stack.peek(0).IsNumber() {
				return vm.runtimeError("Operand must be a number.")
			}
			v := vm.stack.pop()
			vm.stack.push(bytecode.NumberValue(-v.Number))

		case bytecode.OpPrint:
			v := vm.stack.pop()
			fmt.Fprintln(vm.out, v.String())

		case bytecode.OpReturn:
			if vm.stack.size() > 0 {
				fmt.Fprintln(vm.out, vm.stack.pop().String())
			}
			return nil

		default:
			return vm.runtimeError("Unknown opcode %v.", instruction)
		}
	}
}

// binaryNumeric pops two numeric operands, applies op, and pushes the
// result. Reports a runtime error (and leaves the stack untouched, since the
// operands are checked before anything is popped) if either operand isn't a
// number.
func (vm *VM) binaryNumeric(op func(a, b float64) float64) errs.Error {
	if !vm.stack.peek(0).IsNumber() || !vm.stack.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.stack.pop()
	a := vm.stack.pop()
	vm.stack.push(bytecode.NumberValue(op(a.Number, b.Number)))
	return nil
}

// binaryCompare pops two numeric operands, applies op, and pushes the
// boolean result.
func (vm *VM) binaryCompare(op func(a, b float64) bool) errs.Error {
	if !vm.stack.peek(0).IsNumber() || !vm.stack.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.stack.pop()
	a := vm.stack.pop()
	vm.stack.push(bytecode.BoolValue(op(a.Number, b.Number)))
	return nil
}

// readByte reads the byte at vm.ip and advances vm.ip past it.
func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

// readConstant reads a one-byte constant pool index and returns the
// corresponding value.
func (vm *VM) readConstant() bytecode.Value {
	index := vm.readByte()
	return vm.chunk.Constants.At(int(index))
}

// traceStep logs the current stack contents and the instruction about to be
// executed, for --trace runs.
func (vm *VM) traceStep() {
	var stackDump bytes.Buffer
	stackDump.WriteString("          ")
	for i := 0; i < vm.stack.size(); i++ {
		fmt.Fprintf(&stackDump, "[ %v ]", vm.stack.data[i].String())
	}
	logrus.Debugln(stackDump.String())

	var instDump bytes.Buffer
	bytecode.DisassembleInstruction(vm.chunk, &instDump, vm.ip)
	logrus.Debugln(instDump.String())
}

// runtimeError builds an errs.Runtime pinned to the line of the instruction
// that just executed (vm.ip - 1, since readByte already advanced past it).
func (vm *VM) runtimeError(format string, a ...any) errs.Error {
	line := vm.chunk.Lines[vm.ip-1]
	return errs.NewRuntime(line, format, a...)
}
