package global_log

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	logcmd "github.com/keshon/tvc/internal/command/log"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct {
	oneline bool
}

func (c *Command) Name() string      { return "global-log" }
func (c *Command) Short() string     { return "g" }
func (c *Command) Aliases() []string { return []string{"gl"} }
func (c *Command) Usage() string     { return "global-log [--oneline]" }
func (c *Command) Brief() string     { return "Show every commit ever made" }
func (c *Command) Help() string {
	return `Show every commit in the object store, in id order, whether or not a
branch still reaches it.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.oneline, "oneline", false, "show each commit on one line")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 0); err != nil {
		return err
	}
	entries, err := ctx.Repo.GlobalLog()
	if err != nil {
		return err
	}
	logcmd.Print(ctx, entries, c.oneline)
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
