/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

// OpCode is an opcode in the tinylox Virtual Machine. Each is one byte; some
// are followed by a one-byte inline operand.
type OpCode uint8

const (
	// OpConstant reads the following byte as an index into the chunk's
	// constant pool and pushes that constant.
	OpConstant OpCode = iota

	// OpNil, OpTrue and OpFalse push the corresponding literal value. They
	// don't need a constant-pool entry, since there's only ever one of each.
	OpNil
	OpTrue
	OpFalse

	// OpPop discards the value on top of the stack.
	OpPop

	// OpEqual, OpGreater and OpLess pop two values and push the boolean
	// result of comparing them.
	OpEqual
	OpGreater
	OpLess

	// OpAdd, OpSubtract, OpMultiply and OpDivide pop two numbers and push the
	// result of applying the operator. The right-hand operand is popped
	// first, since it was pushed last.
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide

	// OpNot pops a value and pushes its boolean negation (via IsFalsey).
	OpNot

	// OpNegate pops a number and pushes its arithmetic negation.
	OpNegate

	// OpPrint pops a value, prints it followed by a newline.
	OpPrint

	// OpReturn ends execution. If the stack isn't empty (a bare expression
	// with no trailing semicolon left its value there), it pops and prints
	// that value first.
	OpReturn
)

// String renders the opcode's mnemonic, as used by the disassembler.
func (op OpCode) String() string {
	switch op {
	case OpConstant:
		return "OP_CONSTANT"
	case OpNil:
		return "OP_NIL"
	case OpTrue:
		return "OP_TRUE"
	case OpFalse:
		return "OP_FALSE"
	case OpPop:
		return "OP_POP"
	case OpEqual:
		return "OP_EQUAL"
	case OpGreater:
		return "OP_GREATER"
	case OpLess:
		return "OP_LESS"
	case OpAdd:
		return "OP_ADD"
	case OpSubtract:
		return "OP_SUBTRACT"
	case OpMultiply:
		return "OP_MULTIPLY"
	case OpDivide:
		return "OP_DIVIDE"
	case OpNot:
		return "OP_NOT"
	case OpNegate:
		return "OP_NEGATE"
	case OpPrint:
		return "OP_PRINT"
	case OpReturn:
		return "OP_RETURN"
	default:
		return "OP_UNKNOWN"
	}
}
