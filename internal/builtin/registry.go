// Package builtin holds the table of commands that must run inside the
// shell process itself rather than as a forked external program.
package builtin

import (
	"io"
	"sort"
)

// ExecEnv carries the file descriptors a built-in should read from and
// write to. Redirections are applied by the caller before Run is invoked,
// exactly as for external commands.
type ExecEnv struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Func is the signature every built-in command implements. args[0] is the
// command's own name.
type Func func(args []string, env *ExecEnv) error

// Command describes one entry in the built-ins table.
type Command struct {
	Run   Func
	Name  string
	Usage string
}

var registry = make(map[string]*Command)

// Register adds a Command to the built-ins table. Called from init()
// functions in builtins.go.
func Register(cmd *Command) {
	registry[cmd.Name] = cmd
}

// Get looks up a built-in by name.
func Get(name string) (*Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// Names returns the sorted list of registered built-in names, used by the
// REPL's tab completer.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
