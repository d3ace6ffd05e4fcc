package fetch

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/remote"
)

type Command struct{}

func (c *Command) Name() string      { return "fetch" }
func (c *Command) Short() string     { return "F" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "fetch <remote> <branch>" }
func (c *Command) Brief() string     { return "Copy a remote branch's history" }
func (c *Command) Help() string {
	return `Copy every commit and blob reachable from the remote branch that this
repository lacks, and point the local branch <remote>/<branch> at its head.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 2); err != nil {
		return err
	}
	local, err := remote.Fetch(ctx.Repo, ctx.Args[0], ctx.Args[1])
	if err != nil {
		return err
	}
	log.WithField("branch", local).Debug("fetched")
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
