package log

import (
	"flag"
	"fmt"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/repo"
)

type Command struct {
	oneline bool
	limit   int
}

func (c *Command) Name() string      { return "log" }
func (c *Command) Short() string     { return "l" }
func (c *Command) Aliases() []string { return []string{"commits"} }
func (c *Command) Usage() string     { return "log [--oneline] [-n <count>]" }
func (c *Command) Brief() string     { return "Show the history of the current branch" }
func (c *Command) Help() string {
	return `Show commits from the head of the current branch back to the initial
commit, following first parents only.

Options:
  --oneline    Show each commit as its abbreviated id and message.
  -n <count>   Show at most count commits.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.oneline, "oneline", false, "show each commit on one line")
	fs.IntVar(&c.limit, "n", 0, "limit number of commits")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 0); err != nil {
		return err
	}
	entries, err := ctx.Repo.Log()
	if err != nil {
		return err
	}
	if c.limit > 0 && len(entries) > c.limit {
		entries = entries[:c.limit]
	}
	Print(ctx, entries, c.oneline)
	return nil
}

// Print writes log entries in full or one line each.
func Print(ctx *command.Context, entries []repo.LogEntry, oneline bool) {
	for _, e := range entries {
		if oneline {
			fmt.Fprintf(ctx.Out, "%s %s\n", e.ID.Short(), e.Commit.Message)
			continue
		}
		fmt.Fprint(ctx.Out, e.String())
	}
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
