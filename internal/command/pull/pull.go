package pull

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/command/merge"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/remote"
)

type Command struct{}

func (c *Command) Name() string      { return "pull" }
func (c *Command) Short() string     { return "P" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "pull <remote> <branch>" }
func (c *Command) Brief() string     { return "Fetch a remote branch and merge it" }
func (c *Command) Help() string {
	return `Fetch <remote>/<branch>, then merge it into the current branch.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 2); err != nil {
		return err
	}
	res, err := remote.Pull(ctx.Repo, ctx.Args[0], ctx.Args[1])
	if err != nil {
		return err
	}
	merge.Print(ctx.Out, res)
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithRepo(),
			middleware.WithDebugArgsPrint(),
		),
	)
}
