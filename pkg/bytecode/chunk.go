/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

// MaxConstants is the largest number of distinct constants a single Chunk can
// hold. Constant indices are emitted inline as a single byte, so this is
// exactly 256.
const MaxConstants = 256

// A Chunk is a compiled unit: an append-only sequence of opcodes and inline
// operands, a parallel line-number table used only for diagnostics, and an
// embedded constant pool.
type Chunk struct {
	// Code is the bytecode itself: opcodes and the immediate operands they
	// need.
	Code []uint8

	// Lines holds, for each entry in Code, the source line that produced it.
	// len(Lines) == len(Code) at all times. It exists purely for
	// diagnostics and disassembly: the VM reads it only to report the line
	// of a runtime error, never to decide what to execute.
	Lines []int

	// Constants is this chunk's constant pool.
	Constants ValueArray
}

// Write appends a byte to the chunk's code, recording line as the source line
// that produced it.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// AddConstant appends value to the chunk's constant pool and returns its
// index. Callers must check the result fits in a byte (that is, that it's
// less than MaxConstants) before emitting an OP_CONSTANT that references it.
func (c *Chunk) AddConstant(value Value) int {
	c.Constants.Write(value)
	return c.Constants.Count() - 1
}
