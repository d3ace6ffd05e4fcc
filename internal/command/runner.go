package command

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/fs"
)

// Env is the outside world a command run sees.
type Env struct {
	FS  fs.FS
	Cwd string
	Out io.Writer
	Err io.Writer
}

// DefaultEnv runs against the real filesystem from the process working
// directory.
func DefaultEnv() Env {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Env{FS: fs.NewOSFS(), Cwd: cwd, Out: os.Stdout, Err: os.Stderr}
}

// RunCLI is the main entrypoint for executing commands.
func RunCLI(args []string) {
	os.Exit(Execute(args, DefaultEnv()))
}

// Execute resolves the command named by args, applies its flags, runs it
// and returns the process exit code.
func Execute(args []string, env Env) int {
	if len(args) == 0 {
		return report(env, errs.ErrNoCommand)
	}

	node, remaining, err := ResolveCommand(args)
	if err != nil {
		return report(env, err)
	}
	cmd := node.Cmd

	flags := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	cmd.Flags(flags)
	if err := flags.Parse(remaining); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(env.Out, cmd.Help())
			return 0
		}
		log.WithError(err).WithField("command", cmd.Name()).Debug("flag parsing failed")
		return report(env, errs.ErrIncorrectOperand)
	}

	ctx := &Context{
		Args:  flags.Args(),
		Raw:   remaining,
		Flags: flags,
		FS:    env.FS,
		Cwd:   env.Cwd,
		Out:   env.Out,
	}
	if err := cmd.Run(ctx); err != nil {
		return report(env, err)
	}
	return 0
}

// report prints err and returns the failure exit code. Catalog errors are
// printed as their bare message.
func report(env Env, err error) int {
	var e *errs.Error
	if errors.As(err, &e) {
		fmt.Fprintln(env.Out, e.Msg)
		return 1
	}
	fmt.Fprintln(env.Err, "Error:", err)
	return 1
}
