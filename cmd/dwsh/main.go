// Command dwsh is a minimal interactive command shell: it reads a line,
// lexes and parses it into a small AST, and executes it by dispatching
// to built-ins or forking external programs, with the usual pipe and
// file-redirection plumbing in between.
package main

import (
	"fmt"
	"os"

	"github.com/jedevc/dwsh/internal/build"
	"github.com/jedevc/dwsh/internal/repl"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println(build.Version)
		os.Exit(0)
	}

	if len(os.Args) > 1 {
		if err := repl.RunScript(os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "dwsh: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		if err := repl.RunInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "dwsh: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := repl.RunStream(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "dwsh: %v\n", err)
		os.Exit(1)
	}
}
