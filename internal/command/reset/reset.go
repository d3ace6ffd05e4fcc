package reset

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "reset" }
func (c *Command) Short() string     { return "R" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "reset <commit-id>" }
func (c *Command) Brief() string     { return "Move the current branch to a commit" }
func (c *Command) Help() string {
	return `Check out every file tracked by the given commit, remove files the
head commit tracks but it does not, move the current branch to it, and clear
the staging area. The id may be abbreviated.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 1); err != nil {
		return err
	}
	return ctx.Repo.Reset(ctx.Args[0])
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
