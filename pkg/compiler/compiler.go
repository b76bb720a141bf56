/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package compiler implements tinylox's single-pass compiler: a Pratt parser
// that, guided by the precedence table in rules.go, emits bytecode directly
// as it parses, without ever materializing an AST.
package compiler

import (
	"strconv"

	"github.com/stackedboxes/tinylox/pkg/bytecode"
	"github.com/stackedboxes/tinylox/pkg/errs"
	"github.com/stackedboxes/tinylox/pkg/frontend"
)

// Compiler holds all the state needed for a single compilation pass: the
// token stream, the chunk being emitted to, and error-recovery bookkeeping.
// One Compiler is good for exactly one call to Compile.
type Compiler struct {
	// scanner is where we get our tokens from.
	scanner *frontend.Scanner

	// current and previous are the two tokens of lookahead the Pratt parser
	// needs.
	current  *frontend.Token
	previous *frontend.Token

	// chunk is the bytecode chunk we're emitting into.
	chunk *bytecode.Chunk

	// errors accumulates the parse errors reported during this compile.
	// Since panicMode is never cleared (see below), it ends up holding at
	// most one error: the first one found.
	errors *errs.CompileTimeCollection

	// panicMode suppresses further error reports until we reach a
	// synchronization point, to avoid a cascade of confusing messages
	// stemming from a single syntax error. This core has no synchronization
	// point (it compiles a single expression statement list), so in
	// practice panicMode, once set, stays set for the rest of the compile.
	panicMode bool
}

// Compile compiles source into chunk. Returns nil on success. On failure, it
// returns an *errs.CompileTimeCollection with the parse error reported; chunk
// may contain partially-emitted, not-meant-to-run bytecode in that case.
func Compile(source string, chunk *bytecode.Chunk) errs.Error {
	c := &Compiler{
		scanner: frontend.NewScanner(source),
		chunk:   chunk,
		errors:  &errs.CompileTimeCollection{},
	}

	c.advance()

	for !c.match(frontend.TokenKindEOF) {
		c.declaration()
	}

	c.emitReturn()

	if !c.errors.IsEmpty() {
		return c.errors
	}
	return nil
}

//
// Parsing primitives
//

// advance advances the parser by one token. Error tokens are reported
// immediately and skipped; callers only ever see well-formed tokens in
// c.current.
func (c *Compiler) advance() {
	c.previous = c.current

	for {
		c.current = c.scanner.Token()
		if c.current.Kind != frontend.TokenKindError {
			break
		}

		c.errorAtCurrent(c.current.Lexeme)
	}
}

// check reports whether the current token is of the given kind.
func (c *Compiler) check(kind frontend.TokenKind) bool {
	return c.current.Kind == kind
}

// match consumes the current token and returns true if it's of the given
// kind; otherwise it leaves the token stream untouched and returns false.
func (c *Compiler) match(kind frontend.TokenKind) bool {
	if !c.check(kind) {
		return false
	}
	c.advance()
	return true
}

// consume advances past the current token if it's of the given kind;
// otherwise it reports message as a parse error at the current token.
func (c *Compiler) consume(kind frontend.TokenKind, message string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

//
// Grammar
//

// declaration parses one top-level statement. This core has no variable or
// function declarations yet, so it's just statement().
func (c *Compiler) declaration() {
	c.statement()
}

// statement parses a single statement: either a print statement or a bare
// expression statement.
func (c *Compiler) statement() {
	if c.match(frontend.TokenKindPrint) {
		c.printStatement()
		return
	}
	c.expressionStatement()
}

// printStatement parses `print EXPR ;`. The "print" token has already been
// consumed.
func (c *Compiler) printStatement() {
	c.expression()
	c.consume(frontend.TokenKindSemicolon, "Expect ';' after value.")
	c.emitByte(byte(bytecode.OpPrint))
}

// expressionStatement parses a bare `EXPR ;`, discarding the resulting
// value. A trailing semicolon is optional at end-of-file, so that a REPL
// line like `1 + 2` can be typed without one and still have its result
// surface via the implicit OP_RETURN (see emitReturn).
func (c *Compiler) expressionStatement() {
	c.expression()
	if !c.check(frontend.TokenKindEOF) {
		c.consume(frontend.TokenKindSemicolon, "Expect ';' after expression.")
		c.emitByte(byte(bytecode.OpPop))
	}
}

// expression parses a full expression, which is anything that binds at
// precAssignment or tighter.
func (c *Compiler) expression() {
	c.parsePrecedence(precAssignment)
}

// parsePrecedence is the heart of the Pratt parser: it parses, and emits
// bytecode for, any expression that binds at prec or tighter.
func (c *Compiler) parsePrecedence(prec precedence) {
	c.advance()
	prefixRule := ruleFor(c.previous.Kind).prefix
	if prefixRule == nil {
		c.errorAtPrevious("Expect expression.")
		return
	}

	canAssign := prec <= precAssignment
	prefixRule(c, canAssign)

	for prec <= ruleFor(c.current.Kind).precedence {
		c.advance()
		infixRule := ruleFor(c.previous.Kind).infix
		infixRule(c, canAssign)
	}
}

// number emits OP_CONSTANT for a numeric literal. The number token has
// already been consumed into c.previous.
func (c *Compiler) number(_ bool) {
	value := parseFloat(c.previous.Lexeme)
	c.emitConstant(bytecode.NumberValue(value))
}

// literal emits the opcode for a `nil`, `true` or `false` literal. The
// keyword token has already been consumed into c.previous.
func (c *Compiler) literal(_ bool) {
	switch c.previous.Kind {
	case frontend.TokenKindNil:
		c.emitByte(byte(bytecode.OpNil))
	case frontend.TokenKindTrue:
		c.emitByte(byte(bytecode.OpTrue))
	case frontend.TokenKindFalse:
		c.emitByte(byte(bytecode.OpFalse))
	default:
		// Can't happen: rules.go only sends Nil/True/False tokens here.
	}
}

// grouping parses a parenthesized expression. The opening '(' has already
// been consumed into c.previous.
func (c *Compiler) grouping(_ bool) {
	c.expression()
	c.consume(frontend.TokenKindRightParen, "Expect ')' after expression.")
}

// unary parses a unary `-` or `!` expression. The operator token has already
// been consumed into c.previous.
func (c *Compiler) unary(_ bool) {
	operatorKind := c.previous.Kind

	c.parsePrecedence(precUnary)

	switch operatorKind {
	case frontend.TokenKindMinus:
		c.emitByte(byte(bytecode.OpNegate))
	case frontend.TokenKindBang:
		c.emitByte(byte(bytecode.OpNot))
	default:
		// Can't happen: rules.go only sends Minus/Bang tokens here.
	}
}

// binary parses the right-hand side of a binary expression and emits the
// opcode for the operator. The operator token and its left-hand operand have
// already been compiled; c.previous holds the operator token.
func (c *Compiler) binary(_ bool) {
	operatorKind := c.previous.Kind
	rule := ruleFor(operatorKind)

	// "+1" makes the recursive call left-associative: it won't itself
	// consume another operator of the same precedence.
	c.parsePrecedence(rule.precedence + 1)

	switch operatorKind {
	case frontend.TokenKindPlus:
		c.emitByte(byte(bytecode.OpAdd))
	case frontend.TokenKindMinus:
		c.emitByte(byte(bytecode.OpSubtract))
	case frontend.TokenKindStar:
		c.emitByte(byte(bytecode.OpMultiply))
	case frontend.TokenKindSlash:
		c.emitByte(byte(bytecode.OpDivide))
	case frontend.TokenKindEqualEqual:
		c.emitByte(byte(bytecode.OpEqual))
	case frontend.TokenKindBangEqual:
		c.emitBytes(byte(bytecode.OpEqual), byte(bytecode.OpNot))
	case frontend.TokenKindGreater:
		c.emitByte(byte(bytecode.OpGreater))
	case frontend.TokenKindGreaterEqual:
		c.emitBytes(byte(bytecode.OpLess), byte(bytecode.OpNot))
	case frontend.TokenKindLess:
		c.emitByte(byte(bytecode.OpLess))
	case frontend.TokenKindLessEqual:
		c.emitBytes(byte(bytecode.OpGreater), byte(bytecode.OpNot))
	default:
		// Can't happen: rules.go only sends binary-operator tokens here.
	}
}

//
// Emission
//

// emitByte appends b to the chunk, tagged with the line of the token that
// caused it.
func (c *Compiler) emitByte(b byte) {
	c.chunk.Write(b, c.previous.Line)
}

// emitBytes appends two bytes in sequence -- typically an opcode and its
// operand, or (as in binary()'s de-sugaring of >=, <= and !=) two opcodes
// back to back.
func (c *Compiler) emitBytes(b1, b2 byte) {
	c.emitByte(b1)
	c.emitByte(b2)
}

// emitReturn emits the implicit OP_RETURN that ends every compile: whatever
// the last expression statement left dangling (there won't be anything,
// since every expression statement pops its value) or, for a REPL-style bare
// expression with no trailing semicolon, the value itself, gets popped and
// printed by the VM when it executes this OP_RETURN.
func (c *Compiler) emitReturn() {
	c.emitByte(byte(bytecode.OpReturn))
}

// emitConstant adds value to the chunk's constant pool and emits the
// OP_CONSTANT instruction that loads it.
func (c *Compiler) emitConstant(value bytecode.Value) {
	c.emitBytes(byte(bytecode.OpConstant), c.makeConstant(value))
}

// makeConstant adds value to the constant pool and returns its index as a
// byte. Reports a parse error (and returns 0, to keep the byte stream
// well-formed) if the pool is already full.
func (c *Compiler) makeConstant(value bytecode.Value) byte {
	index := c.chunk.AddConstant(value)
	if index >= bytecode.MaxConstants {
		c.errorAtPrevious("Too many constants in one chunk.")
		return 0
	}
	return byte(index)
}

//
// Error reporting
//

// errorAtCurrent reports a parse error at the current token.
func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

// errorAtPrevious reports a parse error at the token we just consumed.
func (c *Compiler) errorAtPrevious(message string) {
	c.errorAt(c.previous, message)
}

// errorAt reports a parse error at a given token. Once panicMode is set,
// further errors are swallowed until a synchronization point -- this core
// doesn't have one, so in effect only the first error of a compile is
// reported.
func (c *Compiler) errorAt(tok *frontend.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true

	err := &errs.CompileTime{
		Message: message,
		Line:    tok.Line,
	}

	switch tok.Kind {
	case frontend.TokenKindEOF:
		err.Lexeme = "end of file"
	case frontend.TokenKindError:
		// The scanner already chose the message; don't also report a
		// lexeme.
	default:
		err.Lexeme = tok.Lexeme
	}

	c.errors.Add(err)
}

// parseFloat converts a number token's lexeme to a float64. The scanner only
// ever produces well-formed numeric lexemes, so the error is impossible in
// practice.
func parseFloat(lexeme string) float64 {
	v, _ := strconv.ParseFloat(lexeme, 64)
	return v
}
