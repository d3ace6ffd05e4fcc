package checkout

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Short() string     { return "C" }
func (c *Command) Aliases() []string { return []string{"co"} }
func (c *Command) Usage() string {
	return "checkout -- <file> | checkout <commit-id> -- <file> | checkout <branch>"
}
func (c *Command) Brief() string { return "Restore files or switch branches" }
func (c *Command) Help() string {
	return `Restore a file or switch to another branch.

Usage:
  checkout -- <file>              - restore file as of the head commit
  checkout <commit-id> -- <file>  - restore file as of a commit (id may be abbreviated)
  checkout <branch>               - switch to branch, rewriting the working tree`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

// Run dispatches on the raw arguments, since "--" is significant here.
func (c *Command) Run(ctx *command.Context) error {
	raw := ctx.Raw
	switch {
	case len(raw) == 2 && raw[0] == "--":
		return ctx.Repo.CheckoutFile(raw[1])
	case len(raw) == 3 && raw[1] == "--":
		return ctx.Repo.CheckoutFileAt(raw[0], raw[2])
	case len(raw) == 1 && raw[0] != "--":
		return ctx.Repo.CheckoutBranch(raw[0])
	default:
		return errs.ErrIncorrectOperand
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
