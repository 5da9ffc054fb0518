// SPDX-License-Identifier: MIT

// Command zxgo is a thin REPL over the shell package's command
// dispatcher: one command per line, read from stdin until EOF or an
// explicit "exit"/"quit". It is a demonstration harness for the
// library, not the library itself — every verb below exists only to
// reach a corresponding call in zxgraph/simplify/gflow/zx2ts/extractor/
// zxio.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/zxgo/internal/shell"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

func run(in io.Reader, out io.Writer) int {
	sh := shell.New()
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "zxgo shell — type a command, \"exit\" to quit")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			return 0
		}
		result, err := sh.Dispatch(strings.Fields(line))
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	return 0
}
