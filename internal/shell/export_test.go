package shell

// ExpandArgvForTest exposes the unexported expandArgv to shell_test, which
// exercises variable and wildcard expansion without going through a full
// CommandNode.
func ExpandArgvForTest(args []string, env map[string]string) ([]string, error) {
	return expandArgv(args, env)
}

// LookupPathForTest exposes the unexported lookupPath to shell_test.
func LookupPathForTest(name, path string) (string, error) {
	return lookupPath(name, path)
}
