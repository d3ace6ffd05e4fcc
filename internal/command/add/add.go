package add

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Short() string     { return "a" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add <file>" }
func (c *Command) Brief() string     { return "Stage a file for the next commit" }
func (c *Command) Help() string {
	return `Stage the current contents of a file.

Adding a file that matches the head commit unstages it instead. Adding a
file staged for removal cancels the removal.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 1); err != nil {
		return err
	}
	return ctx.Repo.Add(ctx.Args[0])
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
