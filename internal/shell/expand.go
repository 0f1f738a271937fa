package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpansionError reports a failure during variable expansion: an unknown
// variable name or an unterminated "${" reference.
type ExpansionError struct {
	Detail string
}

func (e *ExpansionError) Error() string {
	return e.Detail
}

// expandVars performs variable expansion on a single word. "$NAME" greedily
// consumes ASCII letters and underscores (digits are not name characters);
// "${NAME}" consumes any characters up to the closing brace. Unknown names
// are a hard error rather than expanding to the empty string. Quoted and
// unquoted words are expanded identically.
func expandVars(raw string, env map[string]string) (string, error) {
	if !strings.Contains(raw, "$") {
		return raw, nil
	}

	var out strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] != '$' {
			out.WriteByte(raw[i])
			i++
			continue
		}

		i++
		if i >= len(raw) {
			out.WriteByte('$')
			break
		}

		if raw[i] == '{' {
			i++
			start := i
			for i < len(raw) && raw[i] != '}' {
				i++
			}
			if i >= len(raw) {
				return "", &ExpansionError{Detail: "expected end brace"}
			}
			name := raw[start:i]
			i++

			value, ok := env[name]
			if !ok {
				return "", &ExpansionError{Detail: fmt.Sprintf("unbound variable: %s", name)}
			}
			out.WriteString(value)
			continue
		}

		start := i
		for i < len(raw) && isNameChar(raw[i]) {
			i++
		}
		name := raw[start:i]

		if name == "" {
			// No name characters followed '$' (e.g. "$1"): not an
			// unbound-variable error, the '$' is left as a literal
			// character and the following byte is processed normally on
			// the next iteration.
			out.WriteByte('$')
			continue
		}

		value, ok := env[name]
		if !ok {
			return "", &ExpansionError{Detail: fmt.Sprintf("unbound variable: %s", name)}
		}
		out.WriteString(value)
	}
	return out.String(), nil
}

func isNameChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

// expandGlob expands a single argv word against the filesystem. Words
// without '*' pass through unchanged as a one-element list. "**" matches
// recursively across directory levels via doublestar, the Go-ecosystem
// equivalent of Python's glob.glob(raw, recursive=True). A pattern that
// matches nothing expands to the empty list, removing the word entirely.
func expandGlob(word string) ([]string, error) {
	if !strings.Contains(word, "*") {
		return []string{word}, nil
	}

	pattern := filepath.ToSlash(word)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", word, err)
	}
	return matches, nil
}

// expandArgv applies variable expansion then wildcard expansion to an
// argv list, feeding each word's variable-expanded form into globbing.
func expandArgv(args []string, env map[string]string) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		withVars, err := expandVars(arg, env)
		if err != nil {
			return nil, err
		}
		globbed, err := expandGlob(withVars)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, globbed...)
	}
	return expanded, nil
}
