package repl

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedevc/dwsh/internal/builtin"
)

// completer provides tab completion for dwsh: command names (built-ins
// and PATH executables) for the first word of a line, and local
// filesystem paths for every word after that.
type completer struct {
	path string
}

func newCompleter(path string) readline.AutoCompleter {
	return &completer{path: path}
}

func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	words := strings.Fields(lineStr)

	if len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(lineStr, " ")) {
		prefix := ""
		if len(words) == 1 {
			prefix = words[0]
		}
		return c.completeCommand(prefix)
	}

	lastSpace := strings.LastIndex(lineStr, " ")
	partial := ""
	if lastSpace < len(lineStr)-1 {
		partial = lineStr[lastSpace+1:]
	}
	return c.completePath(partial)
}

func (c *completer) completeCommand(prefix string) ([][]rune, int) {
	seen := make(map[string]bool)
	var matches []string

	for _, name := range builtin.Names() {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			matches = append(matches, name)
			seen[name] = true
		}
	}

	for _, dir := range strings.Split(c.path, ":") {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !seen[name] && strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
				seen[name] = true
			}
		}
	}

	sort.Strings(matches)
	result := make([][]rune, len(matches))
	for i, m := range matches {
		result[i] = []rune(m[len(prefix):] + " ")
	}
	return result, len(prefix)
}

func (c *completer) completePath(partial string) ([][]rune, int) {
	searchDir := "."
	searchPrefix := partial

	if strings.Contains(partial, "/") {
		if strings.HasSuffix(partial, "/") {
			searchDir = filepath.Clean(partial)
			searchPrefix = ""
		} else {
			searchDir = filepath.Dir(partial)
			searchPrefix = filepath.Base(partial)
		}
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil, 0
	}

	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, searchPrefix) {
			continue
		}
		if entry.IsDir() {
			matches = append(matches, name+"/")
		} else {
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)
	result := make([][]rune, len(matches))
	for i, m := range matches {
		suffix := m[len(searchPrefix):]
		if !strings.HasSuffix(suffix, "/") {
			suffix += " "
		}
		result[i] = []rune(suffix)
	}
	return result, len(searchPrefix)
}
