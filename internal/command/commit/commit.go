package commit

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Short() string     { return "c" }
func (c *Command) Aliases() []string { return []string{"ci"} }
func (c *Command) Usage() string     { return "commit <message>" }
func (c *Command) Brief() string     { return "Record staged changes as a new commit" }
func (c *Command) Help() string {
	return `Record the staged changes as a new commit on the current branch.

The new commit tracks what its parent tracks, plus staged additions, minus
staged removals. The staging area is cleared afterwards.

Example:
  tvc commit "describe the change"`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	switch len(ctx.Args) {
	case 0:
		return errs.ErrNoMessage
	case 1:
	default:
		return errs.ErrIncorrectOperand
	}

	id, err := ctx.Repo.Commit(ctx.Args[0])
	if err != nil {
		return err
	}
	log.WithField("commit", id).Debug("committed")
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
