/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"fmt"
	"io"
)

// Disassemble writes a human-readable disassembly of every instruction in
// chunk to out, preceded by a name header. Used by the `dev disassemble`
// command; the VM's execution tracer calls DisassembleInstruction directly.
func Disassemble(chunk *Chunk, out io.Writer, name string) {
	fmt.Fprintf(out, "== %s ==\n", name)

	for offset := 0; offset < len(chunk.Code); {
		offset = DisassembleInstruction(chunk, out, offset)
	}
}

// DisassembleInstruction disassembles the instruction at a given offset of
// chunk and returns the offset of the next instruction. Output is written to
// out.
func DisassembleInstruction(chunk *Chunk, out io.Writer, offset int) int {
	fmt.Fprintf(out, "%04d ", offset)

	if offset > 0 && chunk.Lines[offset] == chunk.Lines[offset-1] {
		fmt.Fprint(out, "   | ")
	} else {
		fmt.Fprintf(out, "%4d ", chunk.Lines[offset])
	}

	instruction := OpCode(chunk.Code[offset])

	switch instruction {
	case OpConstant:
		return disassembleConstantInstruction(chunk, out, instruction, offset)

	case OpNil, OpTrue, OpFalse, OpPop,
		OpEqual, OpGreater, OpLess,
		OpAdd, OpSubtract, OpMultiply, OpDivide,
		OpNot, OpNegate, OpPrint, OpReturn:
		return disassembleSimpleInstruction(out, instruction, offset)

	default:
		fmt.Fprintf(out, "Unknown opcode %d\n", instruction)
		return offset + 1
	}
}

// disassembleSimpleInstruction disassembles a single-byte instruction (no
// operand) at offset. Returns the offset of the next instruction.
func disassembleSimpleInstruction(out io.Writer, op OpCode, offset int) int {
	fmt.Fprintf(out, "%s\n", op)
	return offset + 1
}

// disassembleConstantInstruction disassembles an OP_CONSTANT instruction at
// offset. Returns the offset of the next instruction.
func disassembleConstantInstruction(chunk *Chunk, out io.Writer, op OpCode, offset int) int {
	index := chunk.Code[offset+1]
	fmt.Fprintf(out, "%-16s %4d '%v'\n", op, index, chunk.Constants.At(int(index)))
	return offset + 2
}
