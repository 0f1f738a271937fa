package shell

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Classify maps an error produced by parsing or executing a line to a
// diagnostic summary/detail pair: parse error, command not found, no such
// file or directory, is a directory, or permission denied. Anything else
// falls back to a generic "error" summary.
func Classify(err error) (summary, detail string) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return "parse error", parseErr.Message
	}

	var notFound *CommandNotFoundError
	if errors.As(err, &notFound) {
		return "command not found", notFound.Command
	}

	var pathErr *PathError
	if errors.As(err, &pathErr) {
		var errno syscall.Errno
		if errors.As(pathErr.Err, &errno) {
			switch errno {
			case syscall.ENOENT:
				return "no such file or directory", pathErr.Path
			case syscall.EISDIR:
				return "is a directory", pathErr.Path
			case syscall.EACCES:
				return "permission denied", pathErr.Path
			}
		}
		return "error", pathErr.Error()
	}

	return "error", err.Error()
}

// PrintDiagnostic writes err to w in the shell's fixed diagnostic form,
// "dwsh: <summary>: <detail>\n". This string is part of the observable
// contract and must never be altered by cosmetic styling.
func PrintDiagnostic(w io.Writer, err error) {
	summary, detail := Classify(err)
	fmt.Fprintf(w, "dwsh: %s: %s\n", summary, detail)
}
