package push

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/remote"
)

type Command struct{}

func (c *Command) Name() string      { return "push" }
func (c *Command) Short() string     { return "p" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "push <remote> <branch>" }
func (c *Command) Brief() string     { return "Send the current branch to a remote" }
func (c *Command) Help() string {
	return `Copy the current branch's history to the remote and move the remote
branch to the local head. The remote branch is created when missing. Its
head must already be in the local history, so pull first when it is not.
The local repository is verified before anything is sent.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 2); err != nil {
		return err
	}
	return remote.Push(ctx.Repo, ctx.Args[0], ctx.Args[1])
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithIntegrityCheck(),
			middleware.WithRepo(),
			middleware.WithDebugArgsPrint(),
		),
	)
}
