package shell

import (
	"fmt"
	"os"

	"github.com/jedevc/dwsh/internal/builtin"
)

// Node is a parsed command expression: a single command, a redirection
// wrapper, a pipe, a sequential pair, or the empty expression. Execute
// evaluates the node once; Wait blocks until any processes it launched
// have finished and is safe to call even when Execute failed before
// anything was launched.
type Node interface {
	Execute(builtins map[string]*builtin.Command, env map[string]string, hooks Hooks) error
	Wait() error
}

// CommandNode is an ordered sequence of argument words; Args[0] is the
// program name. The parser never emits a CommandNode with zero Args.
type CommandNode struct {
	Args    []string
	pid     int
	started bool
}

// Execute performs variable expansion, wildcard expansion, and then
// dispatches to a built-in (in-process) or an external program
// (fork+exec).
func (c *CommandNode) Execute(builtins map[string]*builtin.Command, env map[string]string, hooks Hooks) error {
	expanded, err := expandArgv(c.Args, env)
	if err != nil {
		return err
	}
	if len(expanded) == 0 {
		// Every word globbed away to nothing; there is no program left to
		// run, so treat the command like an empty line.
		return nil
	}

	name := expanded[0]

	if cmd, ok := builtins[name]; ok {
		hooks.RunExecute(name, expanded)
		bEnv := &builtin.ExecEnv{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
		return cmd.Run(expanded, bEnv)
	}

	path, err := lookupPath(name, env["PATH"])
	if err != nil {
		return err
	}

	hooks.RunExecute(path, expanded)
	pid, err := forkExec(path, expanded)
	if err != nil {
		return err
	}
	c.pid = pid
	c.started = true
	hooks.RunFork()
	return nil
}

// Wait blocks on the recorded child PID, if any; it is a no-op if Execute
// never reached a fork (built-in dispatch, or an error beforehand).
func (c *CommandNode) Wait() error {
	if !c.started {
		return nil
	}
	return waitPID(c.pid)
}

// RedirSpec is a parse-time redirection request: the target fd (FD) and
// the file to open lazily for it (Open). Pipe ends do not go through
// RedirSpec; PipeNode builds its fd redirections with NewFDRedirection.
type RedirSpec struct {
	Open OpenSpec
	FD   int
}

// RedirectionsNode wraps a base node with a non-empty, ordered list of
// redirections applied on scope entry and unwound in reverse on exit.
type RedirectionsNode struct {
	Base  Node
	Specs []RedirSpec
}

func (n *RedirectionsNode) Execute(builtins map[string]*builtin.Command, env map[string]string, hooks Hooks) error {
	redirs := make([]*Redirection, 0, len(n.Specs))
	for _, spec := range n.Specs {
		r, err := NewFileRedirection(spec.FD, spec.Open)
		if err != nil {
			return err
		}
		redirs = append(redirs, r)
	}

	scope := NewScope(redirs)
	if err := scope.Enter(); err != nil {
		return err
	}
	err := n.Base.Execute(builtins, env, hooks)
	scope.Exit()
	return err
}

func (n *RedirectionsNode) Wait() error {
	return n.Base.Wait()
}

// PipeNode connects Left's stdout to Right's stdin via an OS pipe; both
// sides are launched before either is waited upon.
type PipeNode struct {
	Left, Right Node
}

func (p *PipeNode) Execute(builtins map[string]*builtin.Command, env map[string]string, hooks Hooks) error {
	r, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("failed to create pipe: %w", err)
	}

	outRedir, err := NewFDRedirection(1, int(w.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	outScope := NewScope([]*Redirection{outRedir})
	if err := outScope.Enter(); err != nil {
		r.Close()
		w.Close()
		return err
	}

	// The left side runs with an extended Hooks bundle whose fork
	// callback drops the parent's own handle on the write end as soon as
	// the left child has been launched; fd 1 (the dup made by the scope)
	// keeps the pipe writable until the scope exits. If the left side is
	// a built-in no fork ever happens, so the unconditional Close below
	// picks it up instead (Close on an already-closed *os.File is a
	// harmless no-op error).
	leftHooks := hooks.Extend(nil, func() { w.Close() })
	leftErr := p.Left.Execute(builtins, env, leftHooks)
	outScope.Exit()
	w.Close()

	inRedir, err := NewFDRedirection(0, int(r.Fd()))
	if err != nil {
		r.Close()
		if leftErr != nil {
			return leftErr
		}
		return err
	}
	inScope := NewScope([]*Redirection{inRedir})

	var rightErr error
	if err := inScope.Enter(); err != nil {
		rightErr = err
	} else {
		rightErr = p.Right.Execute(builtins, env, hooks)
		inScope.Exit()
	}
	r.Close()

	if leftErr != nil {
		return leftErr
	}
	return rightErr
}

func (p *PipeNode) Wait() error {
	leftErr := p.Left.Wait()
	rightErr := p.Right.Wait()
	if leftErr != nil {
		return leftErr
	}
	return rightErr
}

// EmptyNode is what the parser produces for a blank line or an empty
// segment between two ';'. It does nothing on Execute and never has
// anything to Wait for.
type EmptyNode struct{}

func (EmptyNode) Execute(builtins map[string]*builtin.Command, env map[string]string, hooks Hooks) error {
	return nil
}

func (EmptyNode) Wait() error {
	return nil
}

// MultiNode executes First, waits for it, then executes and waits for
// Second: the sequential (';') composition.
type MultiNode struct {
	First, Second Node
}

func (m *MultiNode) Execute(builtins map[string]*builtin.Command, env map[string]string, hooks Hooks) error {
	firstErr := m.First.Execute(builtins, env, hooks)
	if waitErr := m.First.Wait(); firstErr == nil {
		firstErr = waitErr
	}

	secondErr := m.Second.Execute(builtins, env, hooks)
	if waitErr := m.Second.Wait(); secondErr == nil {
		secondErr = waitErr
	}

	if firstErr != nil {
		return firstErr
	}
	return secondErr
}

// Wait is a no-op: Execute already waited on both halves in order, so
// the second half never starts before the first has been reaped.
func (m *MultiNode) Wait() error {
	return nil
}
