/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package golden

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stackedboxes/tinylox/pkg/errs"
)

func TestDiscoverFindsCaseFilesRecursively(t *testing.T) {
	root := t.TempDir()

	mustWrite := func(rel, contents string) {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(contents), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	mustWrite("a/case.toml", "")
	mustWrite("b/nested/case.toml", "")
	mustWrite("a/source.tlx", "1;")
	mustWrite("notes.txt", "ignore me")

	var found []string
	err := Discover(root, func(caseFile string) errs.Error {
		found = append(found, caseFile)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sort.Strings(found)
	want := []string{filepath.Join(root, "a/case.toml"), filepath.Join(root, "b/nested/case.toml")}
	sort.Strings(want)

	if len(found) != len(want) {
		t.Fatalf("found = %v, want %v", found, want)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("found[%v] = %v, want %v", i, found[i], want[i])
		}
	}
}

func TestDiscoverNonexistentRoot(t *testing.T) {
	err := Discover(filepath.Join(t.TempDir(), "does-not-exist"), func(string) errs.Error {
		t.Fatal("action should not be called")
		return nil
	})
	if err == nil {
		t.Error("expected an error for a nonexistent root")
	}
}
