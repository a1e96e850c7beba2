// Copyright 2024-2026 The Typeset Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden runs file-based golden tests for rendered documents.
//
// A [Corpus] names a testdata directory of input files; each input is
// rendered by the test into one string per entry of [Corpus].Outputs and
// compared against sibling golden files. Setting the environment variable
// named by [Corpus].Refresh to a glob of case names regenerates their golden
// files from the current output instead of comparing.
package golden

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of golden test cases.
type Corpus struct {
	// Root is the test data directory, relative to the directory of the
	// file that calls [Corpus.Run].
	Root string

	// Refresh names the environment variable checked for refresh mode.
	Refresh string

	// Extension is the input file extension (without a dot), e.g. "list".
	Extension string

	// Outputs are the golden file extensions, one per string the render
	// callback returns. For a case "foo.list" and the output "w80.out",
	// the golden file is "foo.list.w80.out". A missing golden file is
	// treated as expecting empty output.
	Outputs []string
}

// Run renders every input file in the corpus and compares the results
// against their golden files.
//
// render is called once per case with the input file's contents and must
// return one string per entry of c.Outputs.
func (c Corpus) Run(t *testing.T, render func(t *testing.T, text string) []string) {
	root := filepath.Join(callerDir(t), c.Root)

	paths, err := doublestar.FilepathGlob(filepath.Join(root, "**", "*."+c.Extension))
	if err != nil {
		t.Fatalf("golden: error while globbing testdata: %v", err)
	}

	refresh := os.Getenv(c.Refresh)
	if !doublestar.ValidatePattern(refresh) {
		t.Fatalf("golden: invalid glob %q", refresh)
	}
	if refresh != "" {
		// Refreshing must not pass, so a stale run cannot slip through CI.
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range paths {
		name, _ := filepath.Rel(root, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", path, err)
			}

			results := render(t, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: render returned %d results, want %d", len(results), len(c.Outputs))
			}

			refresh, _ := doublestar.Match(refresh, name)
			for i, extn := range c.Outputs {
				goldenPath := path + "." + extn

				if refresh {
					if err := os.WriteFile(goldenPath, []byte(results[i]), 0600); err != nil {
						t.Errorf("golden: error while writing output file %q: %v", goldenPath, err)
					}
					continue
				}

				want, err := os.ReadFile(goldenPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: error while loading output file %q: %v", goldenPath, err)
					continue
				}
				if results[i] != string(want) {
					t.Errorf("output mismatch for %q:\n%s", goldenPath, diff(results[i], string(want)))
				}
			}
		})
	}
}

// diff renders a unified diff of got against want.
func diff(got, want string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

// callerDir returns the directory of the test file that called [Corpus.Run],
// so corpora resolve relative to their tests rather than the working
// directory. Fails only in stripped binaries, which tests never are.
func callerDir(t *testing.T) string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		t.Fatal("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
