/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import "testing"

func TestValueString(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{NumberValue(42), "42"},
		{NumberValue(3.5), "3.5"},
		{NumberValue(-1), "-1"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{NilValue, "nil"},
	}

	for _, c := range cases {
		if got := c.value.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestValueIsFalsey(t *testing.T) {
	falsey := []Value{NilValue, BoolValue(false)}
	for _, v := range falsey {
		if !v.IsFalsey() {
			t.Errorf("%v should be falsey", v)
		}
	}

	truthy := []Value{BoolValue(true), NumberValue(0), NumberValue(1)}
	for _, v := range truthy {
		if v.IsFalsey() {
			t.Errorf("%v should be truthy", v)
		}
	}
}

func TestValuesEqual(t *testing.T) {
	if !ValuesEqual(NumberValue(1), NumberValue(1)) {
		t.Error("1 should equal 1")
	}
	if ValuesEqual(NumberValue(1), NumberValue(2)) {
		t.Error("1 should not equal 2")
	}
	if ValuesEqual(NilValue, BoolValue(false)) {
		t.Error("nil should not equal false")
	}
	if !ValuesEqual(NilValue, NilValue) {
		t.Error("nil should equal nil")
	}
}

func TestValueArray(t *testing.T) {
	var a ValueArray
	if a.Count() != 0 {
		t.Fatalf("new array should be empty, got count %v", a.Count())
	}

	a.Write(NumberValue(10))
	a.Write(NumberValue(20))

	if a.Count() != 2 {
		t.Fatalf("expected count 2, got %v", a.Count())
	}
	if a.At(0).Number != 10 {
		t.Errorf("At(0) = %v, want 10", a.At(0))
	}
	if a.At(1).Number != 20 {
		t.Errorf("At(1) = %v, want 20", a.At(1))
	}
}
