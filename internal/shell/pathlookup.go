package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// CommandNotFoundError reports that argv[0] did not resolve to an
// existing file on PATH nor as a direct path.
type CommandNotFoundError struct {
	Command string
}

func (e *CommandNotFoundError) Error() string {
	return "command not found: " + e.Command
}

// lookupPath resolves name to an executable path. A name starting with
// "/" or "./" is used verbatim if it exists; otherwise each colon-separated
// entry of path is tried in order. No executable-bit check is performed
// here; the OS enforces that at exec time. Resolution performs no
// caching, so it is trivially idempotent under a fixed PATH and
// filesystem.
func lookupPath(name, path string) (string, error) {
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "./") {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		return "", &CommandNotFoundError{Command: name}
	}

	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", &CommandNotFoundError{Command: name}
}
