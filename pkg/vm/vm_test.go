/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stackedboxes/tinylox/pkg/errs"
)

func run(t *testing.T, source string) (string, errs.Error) {
	t.Helper()
	var out bytes.Buffer
	err := New(&out).Interpret(source)
	return out.String(), err
}

func TestInterpretArithmetic(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"print 1 + 2 * 3;", "7"},
		{"print (1 + 2) * 3;", "9"},
		{"print -4 / 2;", "-2"},
		{"print 10 - 3 - 2;", "5"},
	}

	for _, c := range cases {
		out, err := run(t, c.source)
		if err != nil {
			t.Fatalf("interpreting %q: unexpected error: %v", c.source, err)
		}
		if got := strings.TrimSpace(out); got != c.want {
			t.Errorf("interpreting %q: output = %q, want %q", c.source, got, c.want)
		}
	}
}

func TestInterpretComparisonsAndEquality(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"print 3 > 2;", "true"},
		{"print 3 < 2;", "false"},
		{"print 3 >= 3;", "true"},
		{"print 3 <= 2;", "false"},
		{"print 1 == 1;", "true"},
		{"print 1 != 2;", "true"},
		{"print nil == false;", "false"},
	}

	for _, c := range cases {
		out, err := run(t, c.source)
		if err != nil {
			t.Fatalf("interpreting %q: unexpected error: %v", c.source, err)
		}
		if got := strings.TrimSpace(out); got != c.want {
			t.Errorf("interpreting %q: output = %q, want %q", c.source, got, c.want)
		}
	}
}

func TestInterpretBooleanAndNilLiterals(t *testing.T) {
	out, err := run(t, "print true; print false; print nil; print !false;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "true\nfalse\nnil\ntrue\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestInterpretBareExpressionPrintsItsValue(t *testing.T) {
	out, err := run(t, "1 + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "3" {
		t.Errorf("output = %q, want %q", got, "3")
	}
}

func TestInterpretCompileError(t *testing.T) {
	_, err := run(t, "print 1 +;")
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if err.ExitCode() != errs.StatusCodeCompileTimeError {
		t.Errorf("ExitCode() = %v, want %v", err.ExitCode(), errs.StatusCodeCompileTimeError)
	}
}

func TestInterpretRuntimeErrorNegatingNonNumber(t *testing.T) {
	_, err := run(t, "-false;")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.ExitCode() != errs.StatusCodeRuntimeError {
		t.Errorf("ExitCode() = %v, want %v", err.ExitCode(), errs.StatusCodeRuntimeError)
	}
	want := "[line 1] Runtime error: Operand must be a number."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInterpretRuntimeErrorAddingNonNumbers(t *testing.T) {
	_, err := run(t, "print true + 1;")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	want := "[line 1] Runtime error: Operands must be numbers."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInterpretResetsStackBetweenCalls(t *testing.T) {
	theVM := New(&bytes.Buffer{})

	if err := theVM.Interpret("-false;"); err == nil {
		t.Fatal("expected a runtime error")
	}

	var out bytes.Buffer
	theVM.out = &out
	if err := theVM.Interpret("print 1 + 1;"); err != nil {
		t.Fatalf("unexpected error on second Interpret call: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "2" {
		t.Errorf("output = %q, want %q", got, "2")
	}
}
