package builtin

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

var (
	exitCmd = &Command{Name: "exit", Usage: "exit [n]"}
	pwdCmd  = &Command{Name: "pwd", Usage: "pwd"}
	cdCmd   = &Command{Name: "cd", Usage: "cd DIR"}
)

func init() {
	exitCmd.Run = runExit
	pwdCmd.Run = runPwd
	cdCmd.Run = runCd

	Register(exitCmd)
	Register(pwdCmd)
	Register(cdCmd)
}

// flagSet builds a pflag.FlagSet whose -h/--help output is the built-in's
// one-line Usage string rather than pflag's default "Usage of NAME:".
func flagSet(cmd *Command, env *ExecEnv) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd.Name, pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(env.Stderr, "usage: %s\n", cmd.Usage)
	}
	return fs
}

// runExit terminates the shell process with status n (default 0).
func runExit(args []string, env *ExecEnv) error {
	fs := flagSet(exitCmd, env)
	if err := fs.Parse(args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	code := 0
	if rest := fs.Args(); len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("exit: %s: numeric argument required", rest[0])
		}
		code = n
	}
	os.Exit(code)
	return nil
}

// runPwd prints the working directory followed by a newline.
func runPwd(args []string, env *ExecEnv) error {
	fs := flagSet(pwdCmd, env)
	if err := fs.Parse(args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, wd)
	return nil
}

// runCd changes the shell's working directory. A missing argument is an
// error surfaced by the built-in itself, not a parse error.
func runCd(args []string, env *ExecEnv) error {
	fs := flagSet(cdCmd, env)
	if err := fs.Parse(args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("cd: missing argument")
	}
	return os.Chdir(rest[0])
}
