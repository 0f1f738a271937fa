package shell_test

import "syscall"

// dupFD, dup2FD, and closeFD give ast_test.go's captureStdout just enough
// raw fd access to observe what an external command actually wrote to the
// shell process's real fd 1: the same primitives redirection.go itself
// uses, kept out of the package under test so the tests only exercise the
// public shell API.

func dupFD(fd int) (int, error) {
	return syscall.Dup(fd)
}

func dup2FD(oldfd, newfd int) error {
	return syscall.Dup2(oldfd, newfd)
}

func closeFD(fd int) error {
	return syscall.Close(fd)
}
