package add_remote

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/remote"
)

type Command struct{}

func (c *Command) Name() string      { return "add-remote" }
func (c *Command) Short() string     { return "ar" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add-remote <name> <path>" }
func (c *Command) Brief() string     { return "Name another repository on this machine" }
func (c *Command) Help() string {
	return `Record a remote. The path names the other repository's .tvc directory,
either absolute or relative to this working tree. Use "/" as the separator.

Example:
  tvc add-remote origin ../shared/.tvc`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 2); err != nil {
		return err
	}
	return remote.Add(ctx.Repo, ctx.Args[0], ctx.Args[1])
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
