// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestRun_DispatchesLinesUntilExit is a smoke test for the REPL loop
// itself: it should dispatch each line through the shell, print one
// result per line, and stop at "exit" without reading further input.
func TestRun_DispatchesLinesUntilExit(t *testing.T) {
	in := strings.NewReader("new\nvertex add 0 Z\nprint\nexit\nvertex add 0 Z\n")
	var out bytes.Buffer

	code := run(in, &out)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	got := out.String()
	if !strings.Contains(got, "new graph 0") {
		t.Fatalf("expected new-graph output, got %q", got)
	}
	if !strings.Contains(got, "added vertex") {
		t.Fatalf("expected vertex-add output, got %q", got)
	}
	if !strings.Contains(got, "interior=1") {
		t.Fatalf("expected print output showing one interior vertex, got %q", got)
	}
	if strings.Count(got, "added vertex") != 1 {
		t.Fatalf("expected exit to stop processing before the line after it, got %q", got)
	}
}

func TestRun_PrintsErrorAndContinues(t *testing.T) {
	in := strings.NewReader("frobnicate\nnew\n")
	var out bytes.Buffer

	code := run(in, &out)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	got := out.String()
	if !strings.Contains(got, "error:") {
		t.Fatalf("expected an error line, got %q", got)
	}
	if !strings.Contains(got, "new graph 0") {
		t.Fatalf("expected the shell to keep running after an error, got %q", got)
	}
}
