/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package golden

import "testing"

// TestRunSuite runs every golden test case under testdata/. This is not a
// proper unit test, but a simple way to exercise a whole tree of scripts and
// their expected output in one shot.
func TestRunSuite(t *testing.T) {
	results, err := RunSuite("../../testdata")
	if err != nil {
		t.Fatalf("running golden suite: %v", err)
	}

	if len(results) == 0 {
		t.Fatal("no golden test cases found")
	}

	for _, r := range results {
		if !r.Passed {
			t.Errorf("%v: %v", r.CasePath, r.Message)
		}
	}
}
