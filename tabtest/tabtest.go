// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package tabtest provides utility functions for testing truth tables.
//
package tabtest

import (
	"testing"

	"github.com/db47h/logictab"
)

// Compare runs both tables and fails t if their headers or any of their rows
// differ. Both tables must enumerate the same number of variable inputs.
//
func Compare(t *testing.T, want, got *logictab.TruthTable) {
	t.Helper()

	wh, gh := want.Header(), got.Header()
	if len(wh) != len(gh) {
		t.Fatalf("header length mismatch: %v vs %v", wh, gh)
	}
	wr, err := want.Run()
	if err != nil {
		t.Fatal(err)
	}
	gr, err := got.Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(wr) != len(gr) {
		t.Fatalf("row count mismatch: %d vs %d", len(wr), len(gr))
	}
	for i := range wr {
		if !equal(wr[i].Inputs, gr[i].Inputs) {
			t.Errorf("row %d inputs: expected %v, got %v", i, wr[i].Inputs, gr[i].Inputs)
		}
		if !equal(wr[i].Outputs, gr[i].Outputs) {
			t.Errorf("row %d outputs: expected %v, got %v", i, wr[i].Outputs, gr[i].Outputs)
		}
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
