package verify

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/middleware"
)

// ErrDamaged is returned when verification finds problems it could not
// repair.
var ErrDamaged = errors.New("repository is damaged")

type Command struct {
	repair bool
}

func (c *Command) Name() string      { return "verify" }
func (c *Command) Short() string     { return "V" }
func (c *Command) Aliases() []string { return []string{"check"} }
func (c *Command) Usage() string     { return "verify [--repair]" }
func (c *Command) Brief() string     { return "Verify or repair repository integrity" }
func (c *Command) Help() string {
	return `Re-hash every stored object and check that every branch points at a
stored commit.

Usage:
  verify           - report damaged objects and dangling branches
  verify --repair  - also restore damaged blobs from matching working files`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.repair, "repair", false, "restore damaged blobs from the working tree")
	fs.BoolVar(&c.repair, "R", false, "alias for --repair")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 0); err != nil {
		return err
	}

	start := time.Now()
	rep, err := ctx.Repo.Verify()
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Scan complete in %s.\n", time.Since(start).Truncate(time.Millisecond))
	fmt.Fprintf(ctx.Out, "Objects checked: %d   Damaged: \033[33m%d\033[0m   Dangling branches: \033[31m%d\033[0m\n",
		rep.Checked, len(rep.Damaged), len(rep.Dangling))
	for _, id := range rep.Damaged {
		fmt.Fprintf(ctx.Out, "  damaged  %s\n", id)
	}
	for _, name := range rep.Dangling {
		fmt.Fprintf(ctx.Out, "  dangling %s\n", name)
	}
	if rep.OK() {
		return nil
	}

	if !c.repair {
		fmt.Fprintln(ctx.Out, "\nSome objects may need repair. Run `tvc verify --repair`.")
		return ErrDamaged
	}

	failed, err := ctx.Repo.Repair(rep.Damaged)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "\nRepaired: \033[32m%d\033[0m   Failed: \033[31m%d\033[0m\n",
		len(rep.Damaged)-len(failed), len(failed))
	if len(failed) > 0 || len(rep.Dangling) > 0 {
		return ErrDamaged
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
