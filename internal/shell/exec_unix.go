package shell

import (
	"fmt"
	"os"
	"syscall"
)

// forkExec launches path as a child process with argv, inheriting the
// calling process's current fd 0/1/2 (which redirection scopes have
// already dup2'd into place) and its full environment unchanged: the
// shell never edits a child's environment.
//
// syscall.ForkExec performs fork and exec atomically and only hands the
// child the fds named in Files. A pipe's unused end is therefore never
// even offered to the child; closing the parent's copy at the right
// moment (PipeNode's fork hook) is all that's needed for EOF to
// propagate.
func forkExec(path string, argv []string) (int, error) {
	attr := &syscall.ProcAttr{
		Files: []uintptr{0, 1, 2},
		Env:   os.Environ(),
	}
	pid, err := syscall.ForkExec(path, argv, attr)
	if err != nil {
		return 0, &PathError{Op: "exec", Path: path, Err: err}
	}
	return pid, nil
}

// waitPID blocks until pid exits. A child's own exit status is not
// reported as an error here: dwsh does not abort a command sequence or
// print a diagnostic just because a child returned non-zero. Only a
// failure of the wait4 call itself is returned.
func waitPID(pid int) error {
	var ws syscall.WaitStatus
	for {
		_, err := syscall.Wait4(pid, &ws, 0, nil)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("wait4 on pid %d: %w", pid, err)
		}
		return nil
	}
}
