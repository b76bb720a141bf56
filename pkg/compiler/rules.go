/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compiler

import "github.com/stackedboxes/tinylox/pkg/frontend"

// precedence represents how tightly a binary operator binds, from loosest to
// tightest.
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precOr                    // or
	precAnd                   // and
	precEquality              // == !=
	precComparison            // < > <= >=
	precTerm                  // + -
	precFactor                // * /
	precUnary                 // ! -
	precCall                  // . ()
	precPrimary
)

// parseFn is either a prefix or an infix parsing function. canAssign is
// unused by this core (there's no assignment target yet) but is threaded
// through so adding one later doesn't change every call site.
type parseFn func(c *Compiler, canAssign bool)

// parseRule is one row of the Pratt parsing table: what to do when a token
// of some kind shows up in prefix position, what to do when it shows up in
// infix position, and how tightly the infix use binds.
type parseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

// rules is the Pratt parsing table, indexed by frontend.TokenKind. Entries
// left as the zero value have no prefix or infix handler and precNone
// precedence, meaning the token can't start or continue an expression.
var rules = [frontend.TokenKindCount]parseRule{
	frontend.TokenKindLeftParen:    {prefix: (*Compiler).grouping},
	frontend.TokenKindMinus:        {prefix: (*Compiler).unary, infix: (*Compiler).binary, precedence: precTerm},
	frontend.TokenKindPlus:         {infix: (*Compiler).binary, precedence: precTerm},
	frontend.TokenKindSlash:        {infix: (*Compiler).binary, precedence: precFactor},
	frontend.TokenKindStar:         {infix: (*Compiler).binary, precedence: precFactor},
	frontend.TokenKindBang:         {prefix: (*Compiler).unary},
	frontend.TokenKindBangEqual:    {infix: (*Compiler).binary, precedence: precEquality},
	frontend.TokenKindEqualEqual:   {infix: (*Compiler).binary, precedence: precEquality},
	frontend.TokenKindGreater:      {infix: (*Compiler).binary, precedence: precComparison},
	frontend.TokenKindGreaterEqual: {infix: (*Compiler).binary, precedence: precComparison},
	frontend.TokenKindLess:         {infix: (*Compiler).binary, precedence: precComparison},
	frontend.TokenKindLessEqual:    {infix: (*Compiler).binary, precedence: precComparison},
	frontend.TokenKindNumber:       {prefix: (*Compiler).number},
	frontend.TokenKindFalse:        {prefix: (*Compiler).literal},
	frontend.TokenKindNil:          {prefix: (*Compiler).literal},
	frontend.TokenKindTrue:         {prefix: (*Compiler).literal},
}

// ruleFor returns the parseRule for a token kind. Kinds with no entry in the
// table (the zero value) correctly report precNone and nil handlers.
func ruleFor(kind frontend.TokenKind) *parseRule {
	return &rules[kind]
}
