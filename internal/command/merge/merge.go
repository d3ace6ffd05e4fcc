package merge

import (
	"flag"
	"fmt"
	"io"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "merge" }
func (c *Command) Short() string     { return "M" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "merge <branch>" }
func (c *Command) Brief() string     { return "Merge a branch into the current branch" }
func (c *Command) Help() string {
	return `Merge the given branch into the current one using their nearest common
ancestor as the base.

If the current branch is an ancestor of the given one it is fast-forwarded.
Files changed differently on both sides are written with conflict markers and
the merge commit is made anyway.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 1); err != nil {
		return err
	}
	res, err := ctx.Repo.Merge(ctx.Args[0])
	if err != nil {
		return err
	}
	Print(ctx.Out, res)
	return nil
}

// Print writes the one-line outcome of a merge, if it has one.
func Print(w io.Writer, res *repo.MergeResult) {
	switch {
	case res.FastForward:
		fmt.Fprintln(w, "Current branch fast-forwarded.")
	case res.Conflict:
		fmt.Fprintln(w, "Encountered a merge conflict.")
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
