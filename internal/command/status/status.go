package status

import (
	"flag"
	"fmt"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "status" }
func (c *Command) Short() string     { return "s" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status" }
func (c *Command) Brief() string     { return "Show branches, staged and unstaged changes" }
func (c *Command) Help() string {
	return `Show the branches (current one marked with *), files staged for
addition and removal, modifications not staged for commit, and untracked
files.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 0); err != nil {
		return err
	}
	report, err := ctx.Repo.Status()
	if err != nil {
		return err
	}
	fmt.Fprint(ctx.Out, report.String())
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
