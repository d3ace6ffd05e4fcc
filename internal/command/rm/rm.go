package rm

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "rm" }
func (c *Command) Short() string     { return "r" }
func (c *Command) Aliases() []string { return []string{"remove"} }
func (c *Command) Usage() string     { return "rm <file>" }
func (c *Command) Brief() string     { return "Unstage a file or stop tracking it" }
func (c *Command) Help() string {
	return `Unstage a file, and if the head commit tracks it, stage it for removal
and delete it from the working tree.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 1); err != nil {
		return err
	}
	return ctx.Repo.Remove(ctx.Args[0])
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
