package shell

// Hooks is an immutable bundle of callbacks invoked at well-defined
// execution points: Execute just before a built-in runs or an external
// program replaces the process image, and Fork once a child for that
// program has been launched. Pipe uses Fork to thread the pipe-close duty
// for the now-unneeded end into the correct side of the pipeline; see
// (*PipeNode).Execute. The callback runs in the parent immediately after
// launch: fork and exec are atomic in ForkExec, so there is no
// in-the-child window to run code in.
type Hooks struct {
	execute []func(command string, args []string)
	fork    []func()
}

// Extend returns a new Hooks bundle combining h's callbacks with any
// additional ones supplied. h itself is left unmodified.
func (h Hooks) Extend(execute func(command string, args []string), fork func()) Hooks {
	next := Hooks{
		execute: append([]func(string, []string){}, h.execute...),
		fork:    append([]func(){}, h.fork...),
	}
	if execute != nil {
		next.execute = append(next.execute, execute)
	}
	if fork != nil {
		next.fork = append(next.fork, fork)
	}
	return next
}

// RunExecute invokes every registered execute hook in registration order.
func (h Hooks) RunExecute(command string, args []string) {
	for _, fn := range h.execute {
		fn(command, args)
	}
}

// RunFork invokes every registered fork hook in registration order.
func (h Hooks) RunFork() {
	for _, fn := range h.fork {
		fn()
	}
}
