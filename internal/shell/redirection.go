package shell

import (
	"fmt"
	"syscall"
)

// OpenSpec describes a file that a Redirection should open lazily, on
// first scope entry: the name, the open flags, and the permission bits
// used if the file is created.
type OpenSpec struct {
	Filename string
	Flags    int
	Perm     uint32
}

// Redirection performs a single fd substitution: it duplicates the fd
// that will replace FD (either an already-open fd, for pipe ends, or one
// obtained by lazily opening Spec) over FD, and restores FD's original
// target on scope exit. Construction captures FD's current target via
// syscall.Dup; failing to duplicate is fatal.
type Redirection struct {
	Spec   *OpenSpec
	FD     int
	newFD  int
	backup int
	opened bool
}

// NewFileRedirection builds a Redirection that will open a file lazily.
func NewFileRedirection(fd int, spec OpenSpec) (*Redirection, error) {
	backup, err := syscall.Dup(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to back up fd %d: %w", fd, err)
	}
	return &Redirection{FD: fd, Spec: &spec, newFD: -1, backup: backup}, nil
}

// NewFDRedirection builds a Redirection whose replacement fd is already
// open (used for pipe ends): no open step is performed.
func NewFDRedirection(fd, newFD int) (*Redirection, error) {
	backup, err := syscall.Dup(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to back up fd %d: %w", fd, err)
	}
	return &Redirection{FD: fd, newFD: newFD, backup: backup, opened: true}, nil
}

// open opens the backing file, if this Redirection is file-backed and has
// not already been opened.
func (r *Redirection) open() error {
	if r.opened {
		return nil
	}
	fd, err := syscall.Open(r.Spec.Filename, r.Spec.Flags, r.Spec.Perm)
	if err != nil {
		return &PathError{Op: "open", Path: r.Spec.Filename, Err: err}
	}
	r.newFD = fd
	r.opened = true
	return nil
}

// Close closes the replacement fd. File-spec descriptors are closed
// automatically on scope exit (see Scope.Exit); pipe-end descriptors are
// the caller's responsibility.
func (r *Redirection) Close() error {
	if r.newFD < 0 {
		return nil
	}
	err := syscall.Close(r.newFD)
	r.newFD = -1
	return err
}

// enter opens the file if needed and duplicates the replacement fd over
// FD, so the shell process (and anything it forks next) sees it.
func (r *Redirection) enter() error {
	if err := r.open(); err != nil {
		return err
	}
	return syscall.Dup2(r.newFD, r.FD)
}

// exit restores FD to the backup captured at construction time and
// releases the backup fd.
func (r *Redirection) exit() error {
	err := syscall.Dup2(r.backup, r.FD)
	syscall.Close(r.backup)
	return err
}

// Scope applies a non-empty, ordered list of Redirections on Enter and
// unwinds them in reverse (LIFO) order on Exit, so nested scopes restore
// prior state correctly even when one entry fails partway through.
type Scope struct {
	redirections []*Redirection
	entered      int
}

// NewScope builds a Scope over the given redirections, applied in list
// order.
func NewScope(redirections []*Redirection) *Scope {
	return &Scope{redirections: redirections}
}

// Enter applies every redirection in order. If one fails, every
// redirection already entered is unwound before the error is returned.
func (s *Scope) Enter() error {
	for _, r := range s.redirections {
		if err := r.enter(); err != nil {
			s.Exit()
			return err
		}
		s.entered++
	}
	return nil
}

// Exit unwinds every entered redirection in reverse order, restoring the
// backed-up fd and, for file-spec redirections, closing the fd that was
// opened on entry so no open file accrues to the shell across lines.
func (s *Scope) Exit() {
	for i := s.entered - 1; i >= 0; i-- {
		r := s.redirections[i]
		r.exit()
		if r.Spec != nil {
			r.Close()
		}
	}
	s.entered = 0
}

// PathError classifies an OS error that occurred while opening a
// redirection target, carrying the path for diagnostic formatting.
type PathError struct {
	Err  error
	Op   string
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
