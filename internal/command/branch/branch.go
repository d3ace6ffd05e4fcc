package branch

import (
	"flag"
	"fmt"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "branch" }
func (c *Command) Short() string     { return "B" }
func (c *Command) Aliases() []string { return []string{"br"} }
func (c *Command) Usage() string     { return "branch [<name>]" }
func (c *Command) Brief() string     { return "List all branches or create a new one" }
func (c *Command) Help() string {
	return `List all branches or create a new one.

Usage:
  branch        - list all branches (current marked with '*')
  branch <name> - create a branch at the current head; HEAD does not move`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	switch len(ctx.Args) {
	case 0:
		return c.list(ctx)
	case 1:
		return ctx.Repo.Branch(ctx.Args[0])
	default:
		return errs.ErrIncorrectOperand
	}
}

func (c *Command) list(ctx *command.Context) error {
	head, err := ctx.Repo.Refs.Head()
	if err != nil {
		return err
	}
	branches, err := ctx.Repo.Branches()
	if err != nil {
		return err
	}
	for _, b := range branches {
		prefix := "  "
		if b.Name == head {
			prefix = "* "
		}
		fmt.Fprintf(ctx.Out, "%s%s\n", prefix, b.Name)
	}
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
