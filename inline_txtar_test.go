// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestInlinesFixture runs every input/want pair in testdata/inlines.txtar
// through ParseInlines and compares the dumpTree output, the same
// fixture-corpus style the teacher used (txtar archives of input/output
// pairs) for its own larger spec-derived test corpora.
func TestInlinesFixture(t *testing.T) {
	a, err := txtar.ParseFile("testdata/inlines.txtar")
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	files := make(map[string][]byte, len(a.Files))
	for _, f := range a.Files {
		files[f.Name] = f.Data
	}
	for _, f := range a.Files {
		name, ok := strings.CutSuffix(f.Name, ".md")
		if !ok {
			continue
		}
		wantData, ok := files[name+".want"]
		if !ok {
			t.Errorf("case %q: missing %s.want", name, name)
			continue
		}
		t.Run(name, func(t *testing.T) {
			in := strings.TrimSuffix(string(f.Data), "\n")
			want := strings.TrimSuffix(string(wantData), "\n")
			got := dumpTree(ParseInlines(View(in), nil))
			if got != want {
				t.Errorf("ParseInlines(%q):\n got:  %s\n want: %s", in, got, want)
			}
		})
	}
}
