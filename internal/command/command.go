package command

import (
	"flag"
	"io"

	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/fs"
	"github.com/keshon/tvc/internal/repo"
)

// Command represents a cli command
type Command interface {
	Name() string
	Short() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Subcommands() []Command
	Flags(fs *flag.FlagSet)
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	// Args are the positional arguments left after flag parsing.
	Args []string
	// Raw are the arguments as typed after the command name, "--" included.
	Raw   []string
	Flags *flag.FlagSet

	FS  fs.FS
	Cwd string
	Out io.Writer

	// Repo is set by middleware.WithRepo.
	Repo *repo.Repository
}

// ExactArgs fails with the operand error unless ctx carries n positional
// arguments.
func ExactArgs(ctx *Context, n int) error {
	if len(ctx.Args) != n {
		return errs.ErrIncorrectOperand
	}
	return nil
}
