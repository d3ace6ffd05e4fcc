package rm_branch

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "rm-branch" }
func (c *Command) Short() string     { return "D" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "rm-branch <name>" }
func (c *Command) Brief() string     { return "Delete a branch pointer" }
func (c *Command) Help() string {
	return `Delete the named branch. Commits made on it are kept. The current
branch cannot be removed.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 1); err != nil {
		return err
	}
	return ctx.Repo.RemoveBranch(ctx.Args[0])
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
