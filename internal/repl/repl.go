// Package repl wires the lexer/parser/executor in internal/shell up to
// either an interactive terminal (via chzyer/readline) or a script file
// read line by line.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/jedevc/dwsh/internal/builtin"
	"github.com/jedevc/dwsh/internal/shell"
	"github.com/jedevc/dwsh/internal/ui"
)

// RunInteractive attaches a readline-backed REPL to stdin/stdout. It
// keeps no history file and performs no "!"-history or alias expansion:
// every line readline hands back is parsed exactly as typed.
func RunInteractive() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.Prompt,
		AutoComplete:    newCompleter(shell.BuildEnv()["PATH"]),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryFile:     "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(os.Stdout, ui.Banner())

	env := shell.BuildEnv()
	builtins := shell.Builtins()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		execLine(line, env, builtins)
	}
}

// RunScript reads path line by line and executes each one in turn, with
// no prompt and no line editing.
func RunScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return RunStream(f)
}

// RunStream runs lines read from r with no prompt and no line editing.
// Used both for RunScript and for a non-interactive stdin (dwsh's input
// redirected from a file or another command's pipe).
func RunStream(r io.Reader) error {
	env := shell.BuildEnv()
	builtins := shell.Builtins()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		execLine(scanner.Text(), env, builtins)
	}
	return scanner.Err()
}

func execLine(line string, env map[string]string, builtins map[string]*builtin.Command) {
	node, err := shell.ParseLine(line)
	if err != nil {
		shell.PrintDiagnostic(os.Stderr, err)
		return
	}

	err = node.Execute(builtins, env, shell.Hooks{})
	if waitErr := node.Wait(); err == nil {
		err = waitErr
	}
	if err != nil {
		shell.PrintDiagnostic(os.Stderr, err)
	}
}
