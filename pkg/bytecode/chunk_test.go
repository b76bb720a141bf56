/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import "testing"

func TestChunkWrite(t *testing.T) {
	var c Chunk
	c.Write(byte(OpReturn), 1)
	c.Write(byte(OpNil), 2)

	if len(c.Code) != 2 {
		t.Fatalf("expected 2 bytes, got %v", len(c.Code))
	}
	if len(c.Lines) != len(c.Code) {
		t.Fatalf("Lines and Code must stay 1:1, got %v lines for %v bytes", len(c.Lines), len(c.Code))
	}
	if c.Lines[0] != 1 || c.Lines[1] != 2 {
		t.Errorf("Lines = %v, want [1 2]", c.Lines)
	}
}

func TestChunkAddConstant(t *testing.T) {
	var c Chunk
	i0 := c.AddConstant(NumberValue(1))
	i1 := c.AddConstant(NumberValue(2))

	if i0 != 0 || i1 != 1 {
		t.Fatalf("expected indices 0 and 1, got %v and %v", i0, i1)
	}
	if c.Constants.At(i0).Number != 1 {
		t.Errorf("constant 0 = %v, want 1", c.Constants.At(i0))
	}
}
