package init

import (
	"flag"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/config"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/repo"
)

type Command struct {
	hash string
}

func (c *Command) Name() string      { return "init" }
func (c *Command) Short() string     { return "i" }
func (c *Command) Aliases() []string { return []string{"initialize"} }
func (c *Command) Usage() string     { return "init [--hash <algo>]" }
func (c *Command) Brief() string     { return "Initialize a new repository" }
func (c *Command) Help() string {
	return `Initialize a new repository in the current directory.

The repository starts with a single "initial commit" on branch master.

Options:
  --hash <algo>   Multihash function for object ids: sha2-256 or blake3
                  (default sha2-256).

Examples:
  tvc init
  tvc init --hash blake3`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.StringVar(&c.hash, "hash", config.DefaultHash, "multihash function for object ids")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 0); err != nil {
		return err
	}
	_, err := repo.Init(ctx.FS, ctx.Cwd, c.hash)
	return err
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
