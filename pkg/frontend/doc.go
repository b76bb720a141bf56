/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package frontend contains tinylox's lexical scanner: the thing that turns
// raw source text into a stream of Tokens for the compiler to consume. There
// is no parser here and no AST -- the compiler package parses directly off
// the token stream and emits bytecode as it goes.
package frontend
