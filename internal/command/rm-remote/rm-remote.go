package rm_remote

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/remote"
)

type Command struct{}

func (c *Command) Name() string      { return "rm-remote" }
func (c *Command) Short() string     { return "rr" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "rm-remote <name>" }
func (c *Command) Brief() string     { return "Forget a remote" }
func (c *Command) Help() string {
	return `Forget a remote. Branches already fetched from it are kept.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 1); err != nil {
		return err
	}
	return remote.Remove(ctx.Repo, ctx.Args[0])
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
