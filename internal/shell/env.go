package shell

import (
	"os"
	"strings"

	"github.com/jedevc/dwsh/internal/builtin"
)

// BuildEnv snapshots the process environment into the name/value map that
// expandVars and lookupPath read from. dwsh never mutates a running
// command's environment; "cd" changes the process working directory, not
// this map, so PATH lookups always see the same PATH the shell started
// with.
func BuildEnv() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok {
			env[name] = value
		}
	}
	return env
}

// Builtins returns the built-in command table in the form Node.Execute
// expects, snapshotted from internal/builtin's registry.
func Builtins() map[string]*builtin.Command {
	table := make(map[string]*builtin.Command)
	for _, name := range builtin.Names() {
		if cmd, ok := builtin.Get(name); ok {
			table[name] = cmd
		}
	}
	return table
}
