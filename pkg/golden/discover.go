/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package golden implements tinylox's TOML-driven golden test harness: a
// directory tree of test cases, each a case.toml file plus a source script,
// run through the VM and checked against expected output, exit code and
// error messages.
package golden

import (
	"os"
	"path"

	"github.com/coregx/coregex"

	"github.com/stackedboxes/tinylox/pkg/errs"
)

// caseFileName is the file name every golden test case directory must
// contain.
const caseFileName = `^case\.toml$`

// forEachMatchingFileRecursive recursively traverses the filesystem from
// root, calling action on every file found whose name matches pattern. Only
// the file name (not the full path) is used for matching.
func forEachMatchingFileRecursive(root string, pattern *coregex.Regexp, action func(path string) errs.Error) errs.Error {
	items, err := os.ReadDir(root)
	if err != nil {
		return errs.NewToolError("reading directory %v: %v", root, err)
	}

	for _, item := range items {
		itemPath := path.Join(root, item.Name())
		if item.IsDir() {
			if err := forEachMatchingFileRecursive(itemPath, pattern, action); err != nil {
				return err
			}
			continue
		}
		if pattern.MatchString(item.Name()) {
			if err := action(itemPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// Discover walks root looking for case.toml files, calling action once for
// each one found.
func Discover(root string, action func(caseFile string) errs.Error) errs.Error {
	pattern, err := coregex.Compile(caseFileName)
	if err != nil {
		return errs.NewICE("compiling golden test file pattern: %v", err)
	}
	return forEachMatchingFileRecursive(root, pattern, action)
}
