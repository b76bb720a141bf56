/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package romutil

import "testing"

func TestIsDir(t *testing.T) {
	isDir, err := IsDir(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isDir {
		t.Error("\".\" should be a directory")
	}

	isDir, err = IsDir("files.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isDir {
		t.Error("\"files.go\" should not be a directory")
	}
}

func TestIsDirNonexistentPath(t *testing.T) {
	if _, err := IsDir("no-such-file-or-directory"); err == nil {
		t.Error("expected an error for a nonexistent path")
	}
}
